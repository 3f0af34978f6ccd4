package checkout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"storefront/database"
	"storefront/model"
)

type InventoryStore interface {
	GetInventory(ctx context.Context, productID string) (*model.Inventory, error)
	UpdateInventoryStock(ctx context.Context, productID string, stock int64, at time.Time) error
}

// AdjusterStats counts finished adjustments. Skipped means the product has
// no inventory row.
type AdjusterStats struct {
	Applied int64 `json:"applied"`
	Skipped int64 `json:"skipped"`
	Failed  int64 `json:"failed"`
}

// InventoryAdjuster decrements stock after an order line is written. Its
// outcome never reaches the submitter: failures are logged and counted.
type InventoryAdjuster struct {
	store   InventoryStore
	pool    *ants.Pool
	timeout time.Duration
	now     func() time.Time
	wg      sync.WaitGroup

	applied atomic.Int64
	skipped atomic.Int64
	failed  atomic.Int64
}

// NewInventoryAdjuster runs adjustments on a pool of the given size, or
// inline when workers is zero or the pool cannot be created. One worker
// applies adjustments in submission order.
func NewInventoryAdjuster(store InventoryStore, workers int, timeout time.Duration) *InventoryAdjuster {
	a := &InventoryAdjuster{store: store, timeout: timeout, now: time.Now}
	if workers > 0 {
		pool, err := ants.NewPool(workers)
		if err != nil {
			zap.L().Warn("inventory pool unavailable, adjusting inline", zap.Error(err))
		} else {
			a.pool = pool
		}
	}
	return a
}

// Adjust schedules a decrement of bags for productID and returns at once
// when a pool is configured.
func (a *InventoryAdjuster) Adjust(productID string, bags int64) {
	a.wg.Add(1)
	task := func() {
		defer a.wg.Done()
		a.apply(productID, bags)
	}
	if a.pool == nil {
		task()
		return
	}
	if err := a.pool.Submit(task); err != nil {
		zap.L().Warn("inventory pool rejected task, adjusting inline",
			zap.String("product_id", productID), zap.Error(err))
		task()
	}
}

func (a *InventoryAdjuster) apply(productID string, bags int64) {
	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	inv, err := a.store.GetInventory(ctx, productID)
	if errors.Is(err, database.ErrNotFound) {
		a.skipped.Add(1)
		zap.L().Info("no inventory row for product, skipping", zap.String("product_id", productID))
		return
	}
	if err != nil {
		a.failed.Add(1)
		zap.L().Warn("inventory fetch failed", zap.String("product_id", productID), zap.Error(err))
		return
	}

	stock := inv.CurrentStock - bags
	if stock < 0 {
		stock = 0
	}
	if err := a.store.UpdateInventoryStock(ctx, productID, stock, a.now()); err != nil {
		a.failed.Add(1)
		zap.L().Warn("inventory update failed", zap.String("product_id", productID), zap.Error(err))
		return
	}
	a.applied.Add(1)
	zap.L().Debug("inventory updated",
		zap.String("product_id", productID),
		zap.Int64("previous", inv.CurrentStock),
		zap.Int64("current", stock))
}

// Wait blocks until every scheduled adjustment has finished.
func (a *InventoryAdjuster) Wait() {
	a.wg.Wait()
}

// Release waits for pending adjustments and stops the pool.
func (a *InventoryAdjuster) Release() {
	a.Wait()
	if a.pool != nil {
		a.pool.Release()
	}
}

func (a *InventoryAdjuster) Stats() AdjusterStats {
	return AdjusterStats{
		Applied: a.applied.Load(),
		Skipped: a.skipped.Load(),
		Failed:  a.failed.Load(),
	}
}
