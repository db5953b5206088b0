package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ThatOtherAndrew/cloudstroke/internal/config"
)

var (
	debug     bool
	configDir string

	logger = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:          "cloudstroke",
	Short:        "Run commands by drawing gestures",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Dir = configDir
		l, err := newLogger(debug)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding settings.json and gestures.json")
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Execute runs the command line.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}
