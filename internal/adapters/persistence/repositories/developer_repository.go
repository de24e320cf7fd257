package repositories

import (
	"context"

	"dmaker/internal/adapters/persistence/models"
	"dmaker/internal/core/domain"

	"gorm.io/gorm"
)

// developerRepository implements DeveloperRepository interface
type developerRepository struct {
	db *gorm.DB
}

// NewDeveloperRepository creates a new developer repository
func NewDeveloperRepository(db *gorm.DB) DeveloperRepository {
	return &developerRepository{db: db}
}

// FindByMemberID gets a developer by member id
func (r *developerRepository) FindByMemberID(ctx context.Context, memberID string) (*domain.Developer, error) {
	var developer models.Developer
	err := conn(ctx, r.db).Where("member_id = ?", memberID).First(&developer).Error
	if err != nil {
		return nil, err
	}
	return developer.ToDomain(), nil
}

// FindByStatus lists developers with the given status
func (r *developerRepository) FindByStatus(ctx context.Context, status domain.StatusCode) ([]*domain.Developer, error) {
	var rows []*models.Developer
	err := conn(ctx, r.db).
		Where("status_code = ?", string(status)).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	developers := make([]*domain.Developer, len(rows))
	for i, row := range rows {
		developers[i] = row.ToDomain()
	}
	return developers, nil
}

// CountByStatus counts developers with the given status
func (r *developerRepository) CountByStatus(ctx context.Context, status domain.StatusCode) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Developer{}).Where("status_code = ?", string(status)).Count(&count).Error
	return count, err
}

// Create inserts a new developer.
// A member id collision surfaces as gorm.ErrDuplicatedKey.
func (r *developerRepository) Create(ctx context.Context, developer *domain.Developer) error {
	row := models.DeveloperFromDomain(developer)
	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		return err
	}
	developer.ID = row.ID
	developer.CreatedAt = row.CreatedAt
	developer.UpdatedAt = row.UpdatedAt
	return nil
}

// Save updates an existing developer by identity
func (r *developerRepository) Save(ctx context.Context, developer *domain.Developer) error {
	row := models.DeveloperFromDomain(developer)
	if row.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	if err := conn(ctx, r.db).Save(row).Error; err != nil {
		return err
	}
	developer.UpdatedAt = row.UpdatedAt
	return nil
}
