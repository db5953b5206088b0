// Package stroke turns raw pointer strokes into normalized point clouds and
// matches them against template clouds.
package stroke

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

const n = models.CloudSize

// ErrTooFewPoints is returned by BuildCloud for strokes with fewer than two points.
var ErrTooFewPoints = errors.New("stroke needs at least 2 points")

// BuildCloud resamples points into a fixed-size cloud, scales it uniformly so
// the larger bounding box side is 1 and moves its centroid to the origin.
func BuildCloud(points []models.Point) (models.Gesture, error) {
	var g models.Gesture
	if len(points) < 2 {
		return g, errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}

	// Step 1
	resample(&g.Points, points)
	// Step 2
	scale(&g.Points)
	// Step 3
	translateToOrigin(&g.Points)

	return g, nil
}

func resample(cloud *[n]models.Point, points []models.Point) {
	interval := pathLength(points) / float32(n-1)

	cloud[0] = points[0]
	filled := 1
	d0 := float32(0)
	for i := 1; i < len(points) && filled < n; i++ {
		prev, cur := points[i-1], points[i]
		if prev.StrokeID != cur.StrokeID {
			continue
		}

		d1 := Distance(prev, cur)
		if d0+d1 < interval {
			d0 += d1
			continue
		}

		first := prev
		for d0+d1 >= interval && filled < n {
			var t float32
			if d1 == 0 {
				t = 0.5
			} else {
				t = clamp((interval-d0)/d1, 0, 1)
			}

			q := models.Point{
				X:        lerp(first.X, cur.X, t),
				Y:        lerp(first.Y, cur.Y, t),
				StrokeID: cur.StrokeID,
			}
			cloud[filled] = q
			filled++

			d1 = d0 + d1 - interval
			d0 = 0
			first = q
		}
		d0 = d1
	}

	// Rounding usually leaves the walk one point short of the end.
	if filled == n-1 {
		cloud[filled] = points[len(points)-1]
		filled++
	}
	for ; filled < n; filled++ {
		cloud[filled] = cloud[filled-1]
	}
}

func pathLength(points []models.Point) float32 {
	d := float32(0)
	for i := 1; i < len(points); i++ {
		if points[i].StrokeID == points[i-1].StrokeID {
			d += Distance(points[i-1], points[i])
		}
	}
	return d
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b models.Point) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// lerp blends in float64 and narrows the result once.
func lerp(a, b, t float32) float32 {
	return float32((1-float64(t))*float64(a) + float64(t)*float64(b))
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func scale(cloud *[n]models.Point) {
	minX, minY := cloud[0].X, cloud[0].Y
	maxX, maxY := cloud[0].X, cloud[0].Y
	for _, p := range cloud {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	size := max(maxX-minX, maxY-minY)
	for i := range cloud {
		p := &cloud[i]
		p.X -= minX
		p.Y -= minY
		// A stroke that never moves collapses to a single point.
		if size > 0 {
			p.X /= size
			p.Y /= size
		}
	}
}

func translateToOrigin(cloud *[n]models.Point) {
	var x, y float32
	for _, p := range cloud {
		x += p.X
		y += p.Y
	}
	x /= n
	y /= n

	for i := range cloud {
		cloud[i].X -= x
		cloud[i].Y -= y
	}
}
