package main

import (
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"retro-clock/internal/app"
	"retro-clock/internal/logger"
	"retro-clock/internal/settings"
)

const logLevelEnv = "RETRO_CLOCK_LOG_LEVEL"

type rootFlags struct {
	configPath string
	logLevel   string
	jsonLogs   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "retro-clock",
		Short:         "A retro desktop clock with settings and an alarm field",
		Version:       app.AppVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", settings.DefaultFile, "Settings file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", defaultLogLevel(), "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.jsonLogs, "json-logs", false, "Write logs as JSON lines")

	return cmd
}

func defaultLogLevel() string {
	if level := os.Getenv(logLevelEnv); level != "" {
		return level
	}
	return "info"
}

func run(flags *rootFlags) error {
	log, err := logger.New(logger.Options{Level: flags.logLevel, JSON: flags.jsonLogs})
	if err != nil {
		return err
	}

	fyneApp := fyneapp.NewWithID(app.AppID)
	application, err := app.NewApplication(fyneApp, app.Options{
		SettingsPath: flags.configPath,
		Logger:       log,
	})
	if err != nil {
		log.Error("Application", err, nil)
		app.ShowFatal(fyneApp, err)
		return err
	}

	return application.Run()
}
