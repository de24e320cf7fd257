package repositories

import (
	"context"

	"dmaker/internal/core/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

// DeveloperRepository defines developer record store interface
type DeveloperRepository interface {
	FindByMemberID(ctx context.Context, memberID string) (*domain.Developer, error)
	FindByStatus(ctx context.Context, status domain.StatusCode) ([]*domain.Developer, error)
	CountByStatus(ctx context.Context, status domain.StatusCode) (int64, error)
	Create(ctx context.Context, developer *domain.Developer) error
	Save(ctx context.Context, developer *domain.Developer) error
}

// RetiredDeveloperRepository defines the append-only retired archive interface
type RetiredDeveloperRepository interface {
	Create(ctx context.Context, retired *domain.RetiredDeveloper) error
	List(ctx context.Context, offset, limit int) ([]*domain.RetiredDeveloper, int64, error)
}

// Transactor runs a unit of work atomically.
// Repository calls made with the ctx passed to fn join the transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
