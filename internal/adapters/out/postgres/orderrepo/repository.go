package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderIsAlreadyStored = errors.New("order already has an id and cannot be added again")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
// db may be a transaction handle, in which case every call runs inside it.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order and binds the generated id onto the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.ID() != 0 {
		return fmt.Errorf("%w: %d", ErrOrderIsAlreadyStored, aggregate.ID())
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageFailureError("insert order", err)
	}

	return aggregate.BindID(dto.ID)
}

// GetForUpdate reads an order with SELECT ... FOR UPDATE. Outside a transaction the lock
// is released as soon as the statement finishes.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewStorageFailureError("select order for update", err)
	}

	return toDomain(dto)
}

// UpdateStatus overwrites the status column as given.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	if status == "" {
		return order.ErrStatusIsRequired
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errs.NewStorageFailureError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}
