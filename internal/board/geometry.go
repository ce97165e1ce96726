package board

// Geometry is the full derived position table handed to the rendering
// side: every (color, steps) pair resolved through CanonicalPosition,
// plus the safe offsets. It carries no state and can be regenerated at
// any time.
type Geometry struct {
	TrackLength       int                     `json:"trackLength"`
	HomeStretchLength int                     `json:"homeStretchLength"`
	FinishSteps       int                     `json:"finishSteps"`
	SafeOffsets       []int                   `json:"safeOffsets"`
	Paths             map[Color][]PathPosition `json:"paths"`
}

func ExportGeometry() Geometry {
	paths := make(map[Color][]PathPosition, len(Colors))
	for _, c := range Colors {
		path := make([]PathPosition, 0, FinishSteps+1)
		for steps := 0; steps <= FinishSteps; steps++ {
			path = append(path, CanonicalPosition(c, steps))
		}
		paths[c] = path
	}
	return Geometry{
		TrackLength:       TrackLength,
		HomeStretchLength: HomeStretchLength,
		FinishSteps:       FinishSteps,
		SafeOffsets:       SafeOffsets(),
		Paths:             paths,
	}
}
