package application

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, app *Application) error
	GetByName(ctx context.Context, name string) (*Application, error)
	// AddFileCount applies an atomic delta to file_count in a single
	// statement. Concurrent deltas must not lose updates.
	AddFileCount(ctx context.Context, name string, delta int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) GetByName(ctx context.Context, name string) (*Application, error) {
	var app Application
	err := r.db.WithContext(ctx).Where("application_name = ?", name).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) AddFileCount(ctx context.Context, name string, delta int64) error {
	return r.db.WithContext(ctx).
		Model(&Application{}).
		Where("application_name = ?", name).
		Update("file_count", gorm.Expr("file_count + ?", delta)).Error
}
