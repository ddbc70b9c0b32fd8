package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-places-api/internal/domain"
)

type PlaceRepo struct{ db *gorm.DB }

func NewPlaceRepo(db *gorm.DB) *PlaceRepo { return &PlaceRepo{db: db} }

func (r *PlaceRepo) Create(ctx context.Context, p *domain.Place) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlaceRepo) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	var p domain.Place
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDWithCreator 删除链路需要 creator 细节（归属判定）
func (r *PlaceRepo) FindByIDWithCreator(ctx context.Context, id string) (*domain.Place, error) {
	var p domain.Place
	err := r.db.WithContext(ctx).Preload("Creator").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaceRepo) FindByCreator(ctx context.Context, creatorID string) ([]domain.Place, error) {
	var ps []domain.Place
	err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Order("created_at desc").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PlaceRepo) Save(ctx context.Context, p *domain.Place) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PlaceRepo) Delete(ctx context.Context, p *domain.Place) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
