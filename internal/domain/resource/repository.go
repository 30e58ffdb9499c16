package resource

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, res *Resource) error
	GetByUUID(ctx context.Context, uuid string) (*Resource, error)
	DeleteByUUID(ctx context.Context, uuid string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, res *Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *repository) GetByUUID(ctx context.Context, uuid string) (*Resource, error) {
	var res Resource
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *repository) DeleteByUUID(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&Resource{}).Error
}
