package registry

import (
	"context"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/domain/repository"

	"go.uber.org/fx"
)

const minSweepInterval = time.Minute

// JanitorParams holds dependencies for the registry janitor, injected by Fx.
type JanitorParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Registry repository.DeviceRegistry
	Logger   *slog.Logger
}

// StartJanitor periodically prunes records that stayed invalid for longer
// than registry.evictInvalidAfter. With eviction disabled (the default)
// nothing is started and invalid records are retained for observability.
func StartJanitor(params JanitorParams) {
	retention := params.Config.Registry.EvictInvalidAfter
	if retention <= 0 {
		return
	}

	interval := retention / 4
	if interval < minSweepInterval {
		interval = minSweepInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						cutoff := time.Now().Add(-retention)
						if removed := params.Registry.PruneInvalid(ctx, cutoff); removed > 0 {
							params.Logger.Info("Pruned invalid device records",
								slog.Int("removed", removed),
								slog.Time("cutoff", cutoff))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done

			return nil
		},
	})
}
