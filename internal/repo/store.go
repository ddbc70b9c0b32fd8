package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-places-api/internal/domain"
)

// Store 显式构造的存储句柄，注入各生命周期管理器；
// WithTx 内拿到的 Store 绑定同一事务，回调返回 err 即整体回滚
type Store struct {
	db     *gorm.DB
	users  *UserRepo
	places *PlaceRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, users: NewUserRepo(db), places: NewPlaceRepo(db)}
}

func (s *Store) Users() domain.UserRepository   { return s.users }
func (s *Store) Places() domain.PlaceRepository { return s.places }

func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&domain.User{}, &domain.Place{})
}

// IsDupKey 唯一约束冲突（并发注册兜底）；不依赖 gorm.ErrDuplicatedKey，驱动间行为不一
func IsDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
