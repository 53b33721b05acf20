// Package cli implements the electron launcher: flag parsing, logging
// setup, and the outer failure boundary around the wallet application.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/romanz/electron/internal/app"
	"github.com/romanz/electron/internal/config"
	"github.com/romanz/electron/internal/logger"
)

// Exit codes reported to the operating system. External tooling checks
// these symbolically.
const (
	ExitSuccess = 0
	ExitFailure = 1 // uncaught application failure
	ExitUsage   = 2 // bad flags or arguments
)

// Runner is the application contract the launcher depends on: a run
// operation returning an integer status, possibly failing.
type Runner interface {
	Run() (int, error)
}

// options collects the launcher's inputs so tests can substitute the
// application and capture its output streams.
type options struct {
	configPath string
	logLevel   string

	outWriter io.Writer
	logWriter io.Writer
	errWriter io.Writer
	newRunner func(log logger.Logger, width, height float32) Runner
}

// Execute runs the launcher with the given command-line arguments and
// returns the process exit status.
func Execute(args []string) int {
	o := &options{
		outWriter: os.Stdout,
		logWriter: os.Stderr,
		errWriter: os.Stderr,
		newRunner: func(log logger.Logger, width, height float32) Runner {
			return app.New(log, width, height)
		},
	}
	return o.execute(args)
}

func (o *options) execute(args []string) int {
	status := ExitSuccess
	cmd := o.newRootCommand(&status)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(o.errWriter, "Error: %v\n", err)
		return ExitUsage
	}
	return status
}

func (o *options) newRootCommand(status *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "electron",
		Short:   app.Name + " wallet client",
		Version: app.Version,
		Args:    cobra.NoArgs,

		// Errors reaching Execute are usage errors; launch failures
		// are handled inside the boundary. Format them ourselves.
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			*status = o.launch()
			return nil
		},
	}

	cmd.SetOut(o.outWriter)
	cmd.SetErr(o.errWriter)

	cmd.Flags().StringVar(&o.configPath, "config", o.configPath, "path to the client config file")
	cmd.Flags().StringVar(&o.logLevel, "log-level", o.logLevel, "log verbosity (debug, info, warn, error)")

	return cmd
}

// launch is the single-shot launch sequence: config, logging, run the
// application, report its status. Any failure escaping the application
// is contained here and forced to ExitFailure.
func (o *options) launch() (status int) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintf(o.errWriter, "Error: %v\n", err)
		return ExitFailure
	}

	level := o.logLevel
	if level == "" {
		level = cfg.LogLevel()
	}
	log := logger.NewConsole(o.logWriter, logger.ParseLevel(level)).
		WithField("session", uuid.NewString())

	log.Info("Launcher", "starting "+app.Name, map[string]interface{}{
		"version": app.Version,
	})

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(o.errWriter, "panic: %v\n%s", r, debug.Stack())
			log.Critical("Launcher", app.Name+" terminated abnormally", fmt.Errorf("panic: %v", r))
			status = ExitFailure
		}
	}()

	width, height := cfg.Window.Size()
	runner := o.newRunner(log, width, height)

	status, err = runner.Run()
	if err != nil {
		fmt.Fprintf(o.errWriter, "Error: %v\n", err)
		log.Critical("Launcher", app.Name+" terminated abnormally", err)
		return ExitFailure
	}

	log.Info("Launcher", fmt.Sprintf("%s terminated normally with status code %d", app.Name, status), nil)
	return status
}
