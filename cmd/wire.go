package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/zoo-api/internal/adapters/metrics"
	recordsadapter "github.com/bnema/zoo-api/internal/adapters/render/records"
	"github.com/bnema/zoo-api/internal/adapters/repo/jsonfile"
	"github.com/bnema/zoo-api/internal/application"
	"github.com/bnema/zoo-api/internal/config"
	"github.com/bnema/zoo-api/internal/domain"
	"github.com/bnema/zoo-api/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg               config.Config
	logger            *slog.Logger
	service           *application.Service
	metrics           *metrics.Recorder
	animalRenderer    func([]domain.Animal) (string, error)
	zookeeperRenderer func([]domain.Zookeeper) (string, error)
}

// appLoader wires the app on first use, after flags have been parsed.
type appLoader struct {
	configFile string
	app        *app
}

func (l *appLoader) load(cmd *cobra.Command) (*app, error) {
	if l.app != nil {
		return l.app, nil
	}

	cfg, err := config.Load(viper.New(), cmd.Flags(), l.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a, err := wireApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	l.app = a
	return a, nil
}

func wireApp(cfg config.Config, logOutput io.Writer) (*app, error) {
	logger, err := logging.New(logOutput, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	animals, zookeepers, err := jsonfile.Open(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("wire record repositories: %w", err)
	}

	recorder := metrics.NewRecorder()

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		service: application.NewService(
			animals,
			zookeepers,
			application.WithLogger(logger),
			application.WithCreatedRecorder(recorder),
		),
		animalRenderer:    recordsadapter.RenderAnimals,
		zookeeperRenderer: recordsadapter.RenderZookeepers,
	}, nil
}
