package injector

import (
	"github.com/google/uuid"
	"github.com/google/wire"

	"github.com/zeusync/territory/internal/app"
	"github.com/zeusync/territory/internal/config"
	"github.com/zeusync/territory/internal/core/events/bus"
	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

var ProviderSet = wire.NewSet(
	ProvideRunID,
	ProvideLogger,
	ProvideBus,
	ProvideSimulation,
	ProvideRenderer,
	app.New,
)

func ProvideRunID() app.RunID {
	return app.RunID(uuid.NewString())
}

// ProvideLogger builds the process logger and tags it with the run ID.
func ProvideLogger(cfg *config.Config, runID app.RunID) log.Log {
	logger := log.NewWithOptions(log.ParseLevel(cfg.Log.Level), log.Options{
		Encoding:    cfg.Log.Encoding,
		OutputPaths: cfg.Log.OutputPaths,
	})
	return logger.With(log.String("run_id", string(runID)))
}

func ProvideBus() bus.EventBus {
	return bus.New()
}

func ProvideSimulation(cfg *config.Config, runID app.RunID, b bus.EventBus, logger log.Log) (*sim.Simulation, error) {
	sc, err := cfg.Simulation()
	if err != nil {
		return nil, err
	}
	return sim.New(sc,
		sim.WithBus(b),
		sim.WithLogger(logger),
		sim.WithSource(string(runID)),
	), nil
}

func ProvideRenderer(cfg *config.Config) *render.Renderer {
	return render.NewRenderer(cfg.Theme())
}
