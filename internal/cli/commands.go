package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/taskcal/internal/app"
	"github.com/sandeepkv93/taskcal/internal/config"
	"github.com/sandeepkv93/taskcal/internal/logging"
	"github.com/sandeepkv93/taskcal/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	ConfigPath string
	Backend    string
	DataPath   string
	LogLevel   string
	Ephemeral  bool
}

type session struct {
	cfg    config.Config
	state  *app.State
	logger *zap.Logger
	closer io.Closer
}

func (s *session) Close() error {
	_ = s.logger.Sync()
	return s.closer.Close()
}

func New() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "taskcal",
		Short:         "Personal task tracker with a month calendar.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), o)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigPath, "config", "", "Config file (default "+config.ResolvePath()+").")
	flags.StringVar(&o.Backend, "backend", "", "Storage backend: json, sqlite, diskv or memory.")
	flags.StringVar(&o.DataPath, "data", "", "Storage location for the selected backend.")
	flags.StringVar(&o.LogLevel, "log-level", "", "Log level: debug, info, warn or error.")
	flags.BoolVar(&o.Ephemeral, "ephemeral", false, "Keep tasks in memory only.")

	addCommands(cmd, o)
	return cmd
}

func addCommands(topLevel *cobra.Command, o *rootOptions) {
	addAdd(topLevel, o)
	addList(topLevel, o)
	addCal(topLevel, o)
	addDo(topLevel, o)
	addVersion(topLevel)
}

func resolveConfig(o *rootOptions) (config.Config, error) {
	path := o.ConfigPath
	if path == "" {
		path = config.ResolvePath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg = config.FromEnv(cfg)
	if o.Backend != "" {
		cfg.Storage.Backend = strings.ToLower(o.Backend)
	}
	if o.DataPath != "" {
		cfg.Storage.Path = o.DataPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}
	cfg = cfg.WithDefaultPath()
	return cfg, cfg.Validate()
}

type loggerFunc func(config.Log) (*zap.Logger, error)

func open(ctx context.Context, o *rootOptions, newLogger loggerFunc, opts ...app.Option) (*session, error) {
	cfg, err := resolveConfig(o)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	port, closer, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}
	opts = append([]app.Option{
		app.WithLogger(logger),
		app.WithSelectToday(cfg.UI.SelectTodayOnStart),
	}, opts...)
	state := app.New(port, opts...)
	if err := state.Init(ctx); err != nil {
		_ = closer.Close()
		return nil, err
	}
	return &session{cfg: cfg, state: state, logger: logger, closer: closer}, nil
}

func openBatch(cmd *cobra.Command, o *rootOptions) (*session, error) {
	return open(cmd.Context(), o, logging.New, app.WithSelectToday(false))
}
