package bootstrap

import (
	"context"
	"log/slog"

	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/scheduler"
	"github.com/verdantworks/idlefarm/internal/server"
	"github.com/verdantworks/idlefarm/internal/snapshot"
	"github.com/verdantworks/idlefarm/internal/sse"
	"github.com/verdantworks/idlefarm/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
	Hub         *sse.Hub
	FarmService farm.Service
	Store       snapshot.Store
}

// GracefulShutdown stops the application in dependency order:
// the HTTP server first (no new requests), then the tick scheduler and
// worker pool (no more simulation steps), then the SSE hub, and finally
// a last snapshot save before the store closes.
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}
	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.FarmService != nil {
		if err := components.FarmService.Save(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}
	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
