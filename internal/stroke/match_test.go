package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

func TestStartOffsetStep(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, step)
}

func TestCloudDistanceIsDirectional(t *testing.T) {
	t.Parallel()

	// a sits entirely on the origin; b has a single outlier at index 0.
	var a, b models.Gesture
	b.Points[0] = models.Point{X: 1}

	// Visiting a, the outlier is the last thing left and gets the smallest weight.
	assert.InDelta(t, 1.0/models.CloudSize, cloudDistance(&a.Points, &b.Points, 0), 1e-7)
	// Visiting b, the outlier comes first with full weight.
	assert.InDelta(t, 1.0, cloudDistance(&b.Points, &a.Points, 0), 1e-7)
}

func TestCloudDistanceWeightsByTraversalOrder(t *testing.T) {
	t.Parallel()

	var a, b models.Gesture
	b.Points[0] = models.Point{X: 1}
	a.Points[0] = models.Point{X: 1}
	a.Points[1] = models.Point{X: 2}

	// Starting at index 1, a[1] is visited first and takes b[0] at distance 1.
	// a[0] is then visited last and pairs with an origin point at distance 1.
	want := float32(1) + (1-float32(models.CloudSize-1)/models.CloudSize)*1
	assert.InDelta(t, want, cloudDistance(&a.Points, &b.Points, 1), 1e-6)
}

func TestCloudDistanceIdenticalClouds(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, circle())
	for start := range models.CloudSize {
		assert.Zero(t, cloudDistance(&g.Points, &g.Points, start), "start %d", start)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	sq := mustBuild(t, square())
	ci := mustBuild(t, circle())
	query := mustBuild(t, transform(square(), 2.5, 40, 40))

	t.Run("empty library", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, NoMatch, Classify(query, nil))
		assert.Equal(t, NoMatch, Classify(query, []models.Gesture{}))

		idx, _ := Match(query, nil)
		assert.Equal(t, -1, idx)
	})

	t.Run("square found first", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, Classify(query, []models.Gesture{sq, ci}))
	})

	t.Run("square found second", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1, Classify(query, []models.Gesture{ci, sq}))
	})

	t.Run("circle query", func(t *testing.T) {
		t.Parallel()
		circleQuery := mustBuild(t, transform(circle(), 0.3, -7, 12))
		assert.Equal(t, 1, Classify(circleQuery, []models.Gesture{sq, ci}))
	})

	t.Run("single template always wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, Classify(query, []models.Gesture{ci}))
	})
}

func TestMatchSelf(t *testing.T) {
	t.Parallel()

	sq := mustBuild(t, square())
	ci := mustBuild(t, circle())
	query := mustBuild(t, square())

	idx, dist := Match(query, []models.Gesture{ci, sq})
	assert.Equal(t, 1, idx)
	assert.Zero(t, dist)
}

func TestMatchTiesGoToFirstTemplate(t *testing.T) {
	t.Parallel()

	sq := mustBuild(t, square())
	ci := mustBuild(t, circle())

	idx, _ := Match(ci, []models.Gesture{sq, ci, ci})
	assert.Equal(t, 1, idx)
}

func TestMatchIsDeterministic(t *testing.T) {
	t.Parallel()

	templates := []models.Gesture{mustBuild(t, square()), mustBuild(t, circle())}
	query := mustBuild(t, transform(circle(), 4, 1, 1))

	idx1, dist1 := Match(query, templates)
	idx2, dist2 := Match(query, templates)
	require.Equal(t, idx1, idx2)
	assert.Equal(t, dist1, dist2)
}
