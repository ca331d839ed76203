// Package cli wires configuration, storage and the task store behind the
// taskboard commands.
package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"taskboard/internal/config"
	"taskboard/internal/logger"
	"taskboard/internal/store"
	"taskboard/internal/tasks"
)

// app is what every command runs against. It is built once per invocation in
// the root command's PersistentPreRunE.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	backend store.Store
	tasks   *tasks.Store
	assets  fs.FS
	now     func() time.Time
}

func (a *app) close() error {
	var err error
	if a.backend != nil {
		err = multierr.Append(err, a.backend.Close())
	}
	if a.log != nil {
		// Sync on stderr fails on some terminals; nothing useful to report.
		_ = a.log.Sync()
	}
	return err
}

type rootFlags struct {
	dbPath string
	driver string
}

// NewRootCmd builds the command tree. assets holds templates/ and static/.
func NewRootCmd(version string, assets fs.FS) *cobra.Command {
	a := &app{assets: assets, now: time.Now}
	var flags rootFlags

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Taskboard - a personal task manager",
		Long: `Taskboard keeps a personal list of tasks with priorities, statuses,
due dates and tags, in a browser page (list or board) or from the terminal.

Running it without a command starts the web server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd.Context(), flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, a)
	}

	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "Database path (overrides DB_PATH)")
	root.PersistentFlags().StringVar(&flags.driver, "driver", "", "Storage driver: sqlite, bolt or memory (overrides STORAGE_DRIVER)")

	root.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newBoardCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newStatusCmd(a),
		newDoneCmd(a),
		newRemoveCmd(a),
		newMoveCmd(a),
		newReorderCmd(a),
		newClearCompletedCmd(a),
		newExportCmd(a),
		newPrefsCmd(a),
		newVersionCmd(version),
	)
	root.Version = version
	return root
}

// Execute runs the root command
func Execute(version string, assets fs.FS) error {
	root := NewRootCmd(version, assets)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (a *app) setup(ctx context.Context, flags rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if flags.dbPath != "" {
		cfg.Storage.Path = flags.dbPath
	}
	if flags.driver != "" {
		cfg.Storage.Driver = flags.driver
	}
	a.cfg = cfg

	a.log, err = logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}

	a.backend, err = store.Open(cfg.Storage.Driver, cfg.Storage.Path, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Storage.Driver, err)
	}

	a.tasks, err = tasks.New(ctx, a.backend, tasks.WithLogger(a.log), tasks.WithClock(a.now))
	if err != nil {
		return err
	}

	if cfg.SeedDemo {
		n, err := a.tasks.Seed(ctx, tasks.DemoSeeds(a.now()))
		if err != nil {
			return fmt.Errorf("failed to seed demo tasks: %w", err)
		}
		if n > 0 {
			a.log.Info("seeded demo tasks", zap.Int("count", n))
		}
	}

	a.log.Debug("storage ready",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("path", cfg.Storage.Path),
		zap.Int("tasks", a.tasks.Len()),
	)
	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskboard %s\n", version)
		},
	}
}
