// Package profilerepo stores the single seller profile of the storefront.
package profilerepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/seller"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileKey is the primary key of the only row.
const profileKey = "default"

type ProfileDTO struct {
	ID          string `gorm:"primaryKey;size:32"`
	Name        string `gorm:"size:255;not null"`
	Email       string `gorm:"size:255;not null"`
	Phone       string `gorm:"size:64"`
	Region      string `gorm:"size:255"`
	CraftType   string `gorm:"size:255"`
	Skill       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
}

func (ProfileDTO) TableName() string {
	return "seller_profiles"
}

type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Get(ctx context.Context) (*seller.Profile, error) {
	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", profileKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller profile", profileKey)
		}
		return nil, err
	}

	return seller.NewProfile(seller.Fields{
		Name:        dto.Name,
		Email:       dto.Email,
		Phone:       dto.Phone,
		Region:      dto.Region,
		CraftType:   dto.CraftType,
		Skill:       dto.Skill,
		Description: dto.Description,
	})
}

// Save upserts the profile row.
func (r *GormProfileRepository) Save(ctx context.Context, profile *seller.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	f := profile.Fields()
	dto := ProfileDTO{
		ID:          profileKey,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Region:      f.Region,
		CraftType:   f.CraftType,
		Skill:       f.Skill,
		Description: f.Description,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
