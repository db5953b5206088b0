package models

// CloudSize is the number of points in every normalized gesture cloud.
const CloudSize = 32

type Point struct {
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	StrokeID int     `json:"id"`
}

// Gesture is a resampled, scaled and origin-centred point cloud. Build it with
// stroke.BuildCloud; the array is copied by value so it never changes after
// construction.
type Gesture struct {
	Points [CloudSize]Point `json:"points"`
}

type GestureConfig struct {
	Command   string    `json:"command"`
	Templates []Gesture `json:"templates"`
}
