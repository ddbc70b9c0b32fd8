package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	Name         string  `gorm:"size:64;not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string  `gorm:"size:100;not null" json:"-"`
	Image        string  `gorm:"size:255;not null" json:"image"`
	Places       []Place `gorm:"foreignKey:CreatorID" json:"places"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ListWithPlaces(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
}
