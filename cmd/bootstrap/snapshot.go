package bootstrap

import (
	"log/slog"

	"course-sectioning/internal/infra/snapshot"
	"course-sectioning/internal/pkg/config"
	"course-sectioning/internal/usecase/sectioning"

	"go.uber.org/fx"
)

var SnapshotModule = fx.Module("snapshot",
	fx.Provide(
		snapshot.NewLockManager,
		fx.Annotate(
			NewSnapshotServer,
			fx.As(new(sectioning.Server)),
		),
	),
)

// NewSnapshotServer builds the in-memory domain server, preloading
// SECTIONING_SNAPSHOT_PATH when it is set.
func NewSnapshotServer(cfg config.Config, locks *snapshot.LockManager, logger *slog.Logger) (*snapshot.Server, error) {
	server := snapshot.NewServer(locks)
	if cfg.Sectioning.SnapshotPath == "" {
		return server, nil
	}
	if err := snapshot.LoadInto(server, cfg.Sectioning.SnapshotPath); err != nil {
		return nil, err
	}
	logger.Info("snapshot loaded",
		"path", cfg.Sectioning.SnapshotPath,
		"offerings", len(server.OfferingIDs()),
	)
	return server, nil
}
