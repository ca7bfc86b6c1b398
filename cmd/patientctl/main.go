package main

import (
	"context"
	"os"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/app"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/config"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/logging"
	"github.com/spf13/cobra"
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "patientctl",
		Short:        "Manage the patient list from the terminal",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "configuration file (default .env)")

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(chartCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(shellCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openApp loads configuration and wires the application. Logs go to stderr
// so command output stays clean. Token auth only applies to serve.
func openApp(ctx context.Context, serve bool) (*app.App, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(logging.Options{
		App:    "patientctl",
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    os.Stderr,
	}); err != nil {
		return nil, err
	}
	if !serve {
		cfg.AuthEnabled = false
	}
	return app.New(ctx, cfg)
}
