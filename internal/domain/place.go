package domain

import (
	"context"
	"time"
)

// Location 经纬度，gorm 展开成 loc_lat / loc_lng 两列
type Location struct {
	Lat float64 `gorm:"not null" json:"lat"`
	Lng float64 `gorm:"not null" json:"lng"`
}

type Place struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Title       string   `gorm:"size:191;not null" json:"title"`
	Description string   `gorm:"size:1024;not null" json:"description"`
	Image       string   `gorm:"size:255;not null" json:"image"`
	Address     string   `gorm:"size:255;not null" json:"address"`
	Location    Location `gorm:"embedded;embeddedPrefix:loc_" json:"location"`

	// 归属关系：creator_id 外键即成员关系，删除 Place 两侧同时生效
	CreatorID string `gorm:"size:36;index;not null" json:"creator"`
	Creator   *User  `gorm:"foreignKey:CreatorID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Place) TableName() string { return "places" }

type PlaceRepository interface {
	Create(ctx context.Context, p *Place) error
	FindByID(ctx context.Context, id string) (*Place, error)
	FindByIDWithCreator(ctx context.Context, id string) (*Place, error)
	FindByCreator(ctx context.Context, creatorID string) ([]Place, error)
	Save(ctx context.Context, p *Place) error
	Delete(ctx context.Context, p *Place) error
}
