package execute

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ThatOtherAndrew/cloudstroke/internal/config"
	gestures "github.com/ThatOtherAndrew/cloudstroke/internal/gesture"
	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
	"github.com/ThatOtherAndrew/cloudstroke/internal/stroke"
)

var (
	// ErrTooShort is returned for strokes with fewer than Settings.MinPoints samples.
	ErrTooShort = errors.New("gesture too short")
	// ErrNoGestures is returned when the library holds no templates at all.
	ErrNoGestures = errors.New("no gestures registered")
)

type Result struct {
	Command string
	// Template is the index of the winning template in the flattened library.
	Template int
	Distance float32
	// Matched is false when the best template is further than Settings.MaxDistance.
	Matched bool
}

type Recognizer struct {
	settings  *config.Settings
	gestures  []models.GestureConfig
	templates []models.Gesture
	owners    []int
	logger    *zap.SugaredLogger

	// Run starts a recognised command. It defaults to Command.
	Run func(command string) error
}

func New(settings *config.Settings, library []models.GestureConfig, logger *zap.SugaredLogger) *Recognizer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	templates, owners := gestures.Flatten(library)
	return &Recognizer{
		settings:  settings,
		gestures:  library,
		templates: templates,
		owners:    owners,
		logger:    logger,
		Run:       Command,
	}
}

// Recognize finds the registered gesture closest to the raw stroke.
func (r *Recognizer) Recognize(points []models.Point) (Result, error) {
	if len(points) < r.settings.MinPoints {
		r.logger.Infow("gesture too short, ignoring", "points", len(points), "min_points", r.settings.MinPoints)
		return Result{}, errors.Wrapf(ErrTooShort, "%d point(s)", len(points))
	}

	cloud, err := stroke.BuildCloud(points)
	if err != nil {
		return Result{}, err
	}

	idx, dist := stroke.Match(cloud, r.templates)
	if idx == stroke.NoMatch {
		return Result{}, ErrNoGestures
	}

	res := Result{
		Command:  r.gestures[r.owners[idx]].Command,
		Template: idx,
		Distance: dist,
		Matched:  dist <= r.settings.MaxDistance,
	}
	r.logger.Debugw("best template", "template", idx, "command", res.Command, "distance", dist)

	if !res.Matched {
		r.logger.Infow("no confident match", "command", res.Command, "distance", dist, "max_distance", r.settings.MaxDistance)
	}
	return res, nil
}

// RecognizeAndExecute recognises the stroke and starts the matched command.
func (r *Recognizer) RecognizeAndExecute(points []models.Point) (Result, error) {
	res, err := r.Recognize(points)
	if err != nil || !res.Matched {
		return res, err
	}

	r.logger.Infow("matched gesture", "command", res.Command, "distance", res.Distance)
	if err := r.Run(res.Command); err != nil {
		return res, errors.Wrap(err, "failed to execute command")
	}
	r.logger.Infow("executed", "command", res.Command)
	return res, nil
}
