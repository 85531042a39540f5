package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/adapters/out/postgres/pgerrs"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	locking bool
}

// aggregateTracker is implemented by the unit of work.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a repository on db. Inside a transaction
// pass locking=true so Get takes a row lock. tracker may be nil.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, locking bool) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		locking: locking,
	}
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate("order:"+aggregate.ID(), aggregate)
	}
}

// Add saves a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.ID(), err)
		}
		return translateWriteError(err, dto)
	}

	r.track(aggregate)
	return nil
}

// Update overwrites an existing order, keeping its sequence number.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "seq").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	query := r.db.WithContext(ctx)
	if r.locking {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll lists orders in the order they were received.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// translateWriteError reports an amount the column cannot hold as out of range.
func translateWriteError(err error, dto OrderDTO) error {
	if pgerrs.IsNumericOutOfRange(err) {
		return errs.NewValueIsOutOfRangeErrorWithCause("amount", dto.Amount, 0, kernel.MaxAmount, err)
	}
	return err
}
