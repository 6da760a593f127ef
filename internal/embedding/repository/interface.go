package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, opt GetOptions) ([]float32, error)
	// GetMany returns one entry per key, nil where the key is not cached.
	GetMany(ctx context.Context, opt GetManyOptions) ([][]float32, error)
	Save(ctx context.Context, opt SaveOptions) error
	SaveMany(ctx context.Context, opt SaveManyOptions) error
}
