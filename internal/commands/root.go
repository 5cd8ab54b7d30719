// Package commands implements the ofrendas command line tool. Each
// subcommand opens the same application the HTTP server runs, performs one
// operation and exits.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"ofrendas/internal/app"
	"ofrendas/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Abridor opens the application a subcommand works on.
type Abridor func(ctx context.Context) (*app.App, error)

// AbrirDesdeEntorno loads the configuration from the environment and opens
// the configured store and remote backends.
func AbrirDesdeEntorno(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return app.New(ctx, cfg)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(abrir Abridor) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "ofrendas",
		Short:   "Registro semanal de ofrendas e informe mensual",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			nivel := zerolog.WarnLevel
			if verbose {
				nivel = zerolog.DebugLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).Level(nivel)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newSemillaCommand(abrir),
		newSincronizarCommand(abrir),
		newExportarSemanaCommand(abrir),
		newInformePDFCommand(abrir),
		newCargarNubeCommand(abrir),
	)

	return rootCmd
}

// conApp opens the application, runs fn and closes it again.
func conApp(cmd *cobra.Command, abrir Abridor, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := abrir(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error().Err(err).Msg("close")
		}
	}()
	return fn(ctx, a)
}

// escribirArchivo writes data to path, or to the command output when path is "-".
func escribirArchivo(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
