package board

// Topology of the shared track and the per-color home stretches.
// Everything in this package is pure and read-only; the rules engine
// derives token positions from (color, steps) and nothing else.

const (
	TrackLength       = 52
	HomeStretchLength = 6
	// FinishSteps is the steps value of a completed token.
	FinishSteps = TrackLength + HomeStretchLength
)

type Color string

const (
	Red    Color = "red"
	Green  Color = "green"
	Yellow Color = "yellow"
	Blue   Color = "blue"
)

// Colors in canonical order around the track.
var Colors = []Color{Red, Green, Yellow, Blue}

// SeatColors partitions the four colors between the two seats.
// Each seat controls the two colors sitting on opposite corners.
var SeatColors = [2][2]Color{
	{Red, Yellow},
	{Green, Blue},
}

// entryOffsets maps each color to the track cell its tokens enter on.
var entryOffsets = map[Color]int{
	Red:    0,
	Green:  13,
	Yellow: 26,
	Blue:   39,
}

func EntryOffset(c Color) int { return entryOffsets[c] }

// IsSafeOffset reports whether a track offset is a safe cell. The safe
// cells are exactly the four entry offsets; a token standing there can
// never be captured.
func IsSafeOffset(offset int) bool {
	for _, off := range entryOffsets {
		if off == offset {
			return true
		}
	}
	return false
}

// SafeOffsets returns the safe track offsets in color order.
func SafeOffsets() []int {
	out := make([]int, 0, len(Colors))
	for _, c := range Colors {
		out = append(out, entryOffsets[c])
	}
	return out
}

type PositionKind string

const (
	InBase        PositionKind = "base"
	OnTrack       PositionKind = "track"
	OnHomeStretch PositionKind = "home"
	Finished      PositionKind = "finished"
)

// PathPosition is the canonical board position of a token. Offset is a
// track offset for OnTrack and a home-stretch offset for OnHomeStretch;
// Color disambiguates the four private home stretches.
type PathPosition struct {
	Kind   PositionKind `json:"kind"`
	Offset int          `json:"offset,omitempty"`
	Color  Color        `json:"color,omitempty"`
}

// CanonicalPosition maps a token's accumulated steps onto the board.
// Steps 1..TrackLength walk the shared track starting at the color's
// entry offset; the next HomeStretchLength-1 steps walk the private
// stretch; FinishSteps is the finish itself.
func CanonicalPosition(c Color, steps int) PathPosition {
	switch {
	case steps <= 0:
		return PathPosition{Kind: InBase, Color: c}
	case steps >= FinishSteps:
		return PathPosition{Kind: Finished, Color: c}
	case steps <= TrackLength:
		return PathPosition{
			Kind:   OnTrack,
			Offset: (entryOffsets[c] + steps - 1) % TrackLength,
			Color:  c,
		}
	default:
		return PathPosition{
			Kind:   OnHomeStretch,
			Offset: steps - TrackLength - 1,
			Color:  c,
		}
	}
}

// SamePlace reports whether two positions denote the same physical
// cell. Track cells are shared between colors; home stretches are
// private per color; base and finish hold any number of tokens and
// never collide.
func SamePlace(a, b PathPosition) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case OnTrack:
		return a.Offset == b.Offset
	case OnHomeStretch:
		return a.Color == b.Color && a.Offset == b.Offset
	default:
		return false
	}
}
