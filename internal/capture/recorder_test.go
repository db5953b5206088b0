package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

func TestRecorderSpacing(t *testing.T) {
	t.Parallel()

	r := Recorder{MinSpacing: 2}
	assert.True(t, r.Add(models.Point{X: 0, Y: 0}))
	assert.False(t, r.Add(models.Point{X: 1, Y: 1}))
	assert.False(t, r.Add(models.Point{X: 2, Y: 0}))
	assert.True(t, r.Add(models.Point{X: 2, Y: 1}))
	// A new stroke is always kept, however close it starts.
	assert.True(t, r.Add(models.Point{X: 2, Y: 1, StrokeID: 1}))

	assert.Equal(t, []models.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 1},
		{X: 2, Y: 1, StrokeID: 1},
	}, r.Points())

	r.Reset()
	assert.Empty(t, r.Points())
}

func TestRecorderKeepsNewest(t *testing.T) {
	t.Parallel()

	r := Recorder{MaxPoints: MaxPoints}
	for i := range MaxPoints + 10 {
		r.Add(models.Point{X: float32(i)})
	}
	points := r.Points()
	assert.Len(t, points, MaxPoints)
	assert.Equal(t, float32(10), points[0].X)
}

func TestThin(t *testing.T) {
	t.Parallel()

	points := []models.Point{{X: 0}, {X: 0}, {X: 0.5}, {X: 3}}
	assert.Equal(t, points, Thin(points, 0))
	assert.Equal(t, []models.Point{{X: 0}, {X: 3}}, Thin(points, 2))
}

func TestThinKeepsLongRecordings(t *testing.T) {
	t.Parallel()

	points := make([]models.Point, 3000)
	for i := range points {
		points[i] = models.Point{X: float32(3 * i)}
	}

	thinned := Thin(points, 2)
	assert.Len(t, thinned, len(points))
	assert.Equal(t, points[0], thinned[0])
	assert.Equal(t, points[len(points)-1], thinned[len(thinned)-1])
}
