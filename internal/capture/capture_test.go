package capture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	want := []models.Point{
		{X: 10, Y: 20, StrokeID: 0},
		{X: 12.5, Y: 21, StrokeID: 1},
	}

	for name, body := range map[string]string{
		"array":  `[{"x": 10, "y": 20}, {"x": 12.5, "y": 21, "id": 1}]`,
		"object": ` {"points": [{"x": 10, "y": 20, "id": 0}, {"x": 12.5, "y": 21, "id": 1}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			points, err := Decode(strings.NewReader(body))
			require.NoError(t, err)
			assert.Equal(t, want, points)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"empty":        ``,
		"not json":     `x,y`,
		"single point": `[{"x": 1, "y": 1}]`,
		"no points":    `{"points": []}`,
		"overflow":     `[{"x": 1e300, "y": 1}, {"x": 2, "y": 2}]`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stroke.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"x": 0, "y": 0}, {"x": 3, "y": 4}]`), 0644))

	points, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
