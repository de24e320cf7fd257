package repositories

import (
	"context"

	"dmaker/internal/adapters/persistence/models"
	"dmaker/internal/core/domain"

	"gorm.io/gorm"
)

// retiredDeveloperRepository implements RetiredDeveloperRepository interface
// Entries are only ever inserted.
type retiredDeveloperRepository struct {
	db *gorm.DB
}

// NewRetiredDeveloperRepository creates a new retired developer repository
func NewRetiredDeveloperRepository(db *gorm.DB) RetiredDeveloperRepository {
	return &retiredDeveloperRepository{db: db}
}

// Create appends an archive entry
func (r *retiredDeveloperRepository) Create(ctx context.Context, retired *domain.RetiredDeveloper) error {
	row := models.RetiredDeveloperFromDomain(retired)
	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		return err
	}
	retired.ID = row.ID
	retired.RetiredAt = row.CreatedAt
	return nil
}

// List lists archive entries, newest first
func (r *retiredDeveloperRepository) List(ctx context.Context, offset, limit int) ([]*domain.RetiredDeveloper, int64, error) {
	var rows []*models.RetiredDeveloper
	var total int64

	if err := conn(ctx, r.db).Model(&models.RetiredDeveloper{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := conn(ctx, r.db).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	retired := make([]*domain.RetiredDeveloper, len(rows))
	for i, row := range rows {
		retired[i] = row.ToDomain()
	}
	return retired, total, nil
}
