package upload

import (
	"context"

	"arunika/internal/domain/entity"
	domainservice "arunika/internal/domain/service"
	"arunika/pkg/logger"
)

// Compensator removes remote objects the database no longer (or never did)
// reference. Strictly best-effort: every failure is logged and swallowed,
// one failed delete does not block the others, and nothing here may mask
// the error that brought us to the failure branch.
type Compensator struct {
	store domainservice.ObjectStorage
}

func NewCompensator(store domainservice.ObjectStorage) *Compensator {
	return &Compensator{
		store: store,
	}
}

// Compensate rolls back uploads whose surrounding operation failed before
// the entity write committed.
func (c *Compensator) Compensate(ctx context.Context, assets []entity.Asset) {
	c.deleteAll(ctx, assets)
}

// Release deletes superseded or explicitly flagged assets after the entity
// write that stopped referencing them has committed. A failure here is
// cleanup debt, not a correctness violation.
func (c *Compensator) Release(ctx context.Context, assets []entity.Asset) {
	c.deleteAll(ctx, assets)
}

func (c *Compensator) deleteAll(ctx context.Context, assets []entity.Asset) {
	for _, asset := range assets {
		if asset.RemoteID == "" {
			continue
		}
		if err := c.store.Delete(ctx, asset.RemoteID); err != nil {
			logger.CleanupFailure(asset.RemoteID, err)
		}
	}
}
