// Package productrepo maps catalog products to the products table.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq          int64           `gorm:"autoIncrement;not null;uniqueIndex"`
	Name         string          `gorm:"size:255;not null"`
	Category     string          `gorm:"size:100;not null;index"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Availability int             `gorm:"not null;index"`
	Images       pq.StringArray  `gorm:"type:text[]"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		Category:     p.Category(),
		Description:  p.Description(),
		Price:        p.Price().Decimal(),
		Availability: int(p.Availability()),
		Images:       pq.StringArray(p.Images()),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.MoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, product.Details{
		Name:         dto.Name,
		Category:     dto.Category,
		Description:  dto.Description,
		Price:        price,
		Availability: product.Availability(dto.Availability),
		Images:       dto.Images,
	})
}
