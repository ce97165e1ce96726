package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process-wide knobs, all overridable through the
// environment. A .env file is honored when present.
type Config struct {
	HTTPAddr string

	// AIThinkDelay is how long the computer seat "thinks" before its
	// deferred turn fires.
	AIThinkDelay time.Duration
	// DisconnectGrace is how long a disconnected seat keeps its
	// binding before it is evicted.
	DisconnectGrace time.Duration
	// StaleAfter is the inactivity threshold past which a fully
	// disconnected game is swept away.
	StaleAfter time.Duration
	// SweepInterval is how often the registry sweep runs.
	SweepInterval time.Duration

	// DiceSeed pins the dice RNG for every new game when non-zero.
	// Leave zero in production.
	DiceSeed int64
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:        getenvStr("HTTP_ADDR", ":8080"),
		AIThinkDelay:    time.Duration(getenvInt("AI_THINK_DELAY_MS", 1200)) * time.Millisecond,
		DisconnectGrace: time.Duration(getenvInt("DISCONNECT_GRACE_SEC", 60)) * time.Second,
		StaleAfter:      time.Duration(getenvInt("STALE_AFTER_MIN", 30)) * time.Minute,
		SweepInterval:   time.Duration(getenvInt("SWEEP_INTERVAL_SEC", 300)) * time.Second,
		DiceSeed:        int64(getenvInt("DICE_SEED", 0)),
	}
}
