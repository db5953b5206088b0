package capture

import (
	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

// MaxPoints is the usual cap for a live capture buffer.
const MaxPoints = 2048

// Recorder accumulates pointer samples, dropping those that barely moved from
// the previous sample of the same stroke. When MaxPoints is positive only the
// newest MaxPoints samples are kept.
type Recorder struct {
	MinSpacing float32
	MaxPoints  int
	points     []models.Point
}

// Add records p and reports whether it was kept.
func (r *Recorder) Add(p models.Point) bool {
	if n := len(r.points); n > 0 && r.MinSpacing > 0 {
		last := r.points[n-1]
		dx := p.X - last.X
		dy := p.Y - last.Y
		if last.StrokeID == p.StrokeID && dx*dx+dy*dy <= r.MinSpacing*r.MinSpacing {
			return false
		}
	}

	r.points = append(r.points, p)
	if r.MaxPoints > 0 && len(r.points) > r.MaxPoints {
		r.points = r.points[len(r.points)-r.MaxPoints:]
	}
	return true
}

func (r *Recorder) Points() []models.Point {
	return r.points
}

func (r *Recorder) Reset() {
	r.points = nil
}

// Thin replays a complete recording through an uncapped Recorder with the
// given spacing.
func Thin(points []models.Point, minSpacing float32) []models.Point {
	r := Recorder{MinSpacing: minSpacing}
	for _, p := range points {
		r.Add(p)
	}
	return r.Points()
}
