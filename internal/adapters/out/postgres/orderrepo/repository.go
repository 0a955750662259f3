package orderrepo

import (
	"context"
	"errors"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderIDLockKey identifies the advisory lock that serializes id allocation.
const orderIDLockKey = 7_300_001

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. Pass a
// transaction handle to make every call part of that transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// NextOrderID returns MAX(order_id)+1, or 1 for an empty table. The
// transaction-scoped advisory lock keeps concurrent placements from getting the
// same id; outside a transaction the lock is released right away.
func (r *GormOrderRepository) NextOrderID(ctx context.Context) (kernel.OrderID, error) {
	db := r.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(?)", orderIDLockKey).Error; err != nil {
		return kernel.OrderID{}, err
	}

	var next int64
	if err := db.Raw("SELECT COALESCE(MAX(order_id), 0) + 1 FROM orders").Scan(&next).Error; err != nil {
		return kernel.OrderID{}, err
	}

	return kernel.NewOrderID(next)
}

// AddItem stores one order line priced from the menu. An item missing from
// the menu yields an ObjectNotFoundError.
func (r *GormOrderRepository) AddItem(ctx context.Context, orderID kernel.OrderID, line order.Line) error {
	if err := errors.Join(orderID.Validate(), line.Validate()); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var item FoodItemDTO
	if err := db.First(&item, "name = ?", line.FoodItem()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("food item", line.FoodItem())
		}
		return err
	}

	dto := lineToDTO(orderID, item, line)
	return db.Create(&dto).Error
}

// AddTracking stores the tracking row of an order.
func (r *GormOrderRepository) AddTracking(ctx context.Context, orderID kernel.OrderID, status order.Status) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := trackingToDTO(orderID, status)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Add stores every line of the order and its tracking row, stopping at the
// first failure.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, line := range aggregate.Lines() {
		if err := r.AddItem(ctx, aggregate.ID(), line); err != nil {
			return err
		}
	}

	return r.AddTracking(ctx, aggregate.ID(), aggregate.Status())
}

// TotalPrice sums the line totals of an order; 0 when it has no lines.
func (r *GormOrderRepository) TotalPrice(ctx context.Context, orderID kernel.OrderID) (float64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var total float64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(total_price), 0)::float8 FROM orders WHERE order_id = ?", orderID.Int64()).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Status returns the tracking status verbatim.
func (r *GormOrderRepository) Status(ctx context.Context, orderID kernel.OrderID) (order.Status, bool, error) {
	if err := orderID.Validate(); err != nil {
		return "", false, err
	}

	var dto OrderTrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return order.Status(dto.Status), true, nil
}
