package gestures

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/cloudstroke/internal/config"
	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

// ErrNotFound is returned when no gesture is registered for a command.
var ErrNotFound = errors.New("gesture not found")

func LoadGestures() ([]models.GestureConfig, error) {
	configFile, err := config.GetPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GestureConfig{}, nil
		}
		return nil, errors.Wrapf(err, "cannot read %s", configFile)
	}

	var gestures []models.GestureConfig
	if err := json.Unmarshal(data, &gestures); err != nil {
		return nil, errors.Wrapf(err, "invalid gesture library %s", configFile)
	}

	return gestures, nil
}

func SaveGesture(command string, templates []models.Gesture) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	newGesture := models.GestureConfig{
		Command:   command,
		Templates: templates,
	}

	found := false
	for i, g := range gestures {
		if g.Command == command {
			gestures[i] = newGesture
			found = true
			break
		}
	}
	if !found {
		gestures = append(gestures, newGesture)
	}

	return writeGestures(gestures)
}

func RemoveGesture(command string) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	found := false
	for i, g := range gestures {
		if g.Command == command {
			gestures = append(gestures[:i], gestures[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return errors.Wrap(ErrNotFound, command)
	}

	return writeGestures(gestures)
}

func writeGestures(gestures []models.GestureConfig) error {
	configFile, err := config.GetPath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(gestures)
	if err != nil {
		return errors.Wrap(err, "cannot encode gesture library")
	}

	return errors.Wrapf(os.WriteFile(configFile, data, 0644), "cannot write %s", configFile)
}

// Flatten lists every template of every gesture in order, along with the index
// of the gesture each template came from.
func Flatten(gestures []models.GestureConfig) (templates []models.Gesture, owners []int) {
	for i, g := range gestures {
		for _, t := range g.Templates {
			templates = append(templates, t)
			owners = append(owners, i)
		}
	}
	return templates, owners
}
