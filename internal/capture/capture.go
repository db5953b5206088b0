// Package capture reads recorded raw strokes.
//
// A recording is JSON, either a bare array of points or an object with a
// "points" array:
//
//	[{"x": 10, "y": 20, "id": 0}, {"x": 12, "y": 21, "id": 0}]
//	{"points": [{"x": 10, "y": 20}, {"x": 12, "y": 21}]}
//
// A point without "id" belongs to stroke 0.
package capture

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

// Stdin is the file name that makes ReadFile read standard input.
const Stdin = "-"

type recording struct {
	Points []models.Point `json:"points"`
}

// Decode parses a recording and checks that it holds a usable stroke.
func Decode(r io.Reader) ([]models.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read recording")
	}

	var points []models.Point
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var rec recording
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, errors.Wrap(err, "invalid recording")
		}
		points = rec.Points
	} else if err := json.Unmarshal(trimmed, &points); err != nil {
		return nil, errors.Wrap(err, "invalid recording")
	}

	if len(points) < 2 {
		return nil, errors.Errorf("recording has %d point(s), need at least 2", len(points))
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, errors.Errorf("point %d has non-finite coordinates", i)
		}
	}
	return points, nil
}

// ReadFile decodes the recording stored at path, or standard input for Stdin.
func ReadFile(path string) ([]models.Point, error) {
	if path == Stdin {
		points, err := Decode(os.Stdin)
		return points, errors.Wrap(err, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open recording")
	}
	defer f.Close()

	points, err := Decode(f)
	return points, errors.Wrap(err, path)
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
