package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-places-api/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := NewStore(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func seedUser(t *testing.T, s *Store, id, email string) *domain.User {
	t.Helper()
	u := &domain.User{ID: id, Name: "Ann", Email: email, PasswordHash: "x", Image: "img.png"}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestUserRepoRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "ann@x.com")

	u, err := s.Users().FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "ann@x.com", u.Email)

	u, err = s.Users().FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "u1", u.ID)

	// 查不到是 (nil, nil)，不是错误
	u, err = s.Users().FindByID(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "ann@x.com")
	err := s.Users().Create(ctx, &domain.User{ID: "u2", Name: "Bob", Email: "ann@x.com", PasswordHash: "x", Image: "i"})
	require.Error(t, err)
	require.True(t, IsDupKey(err))
}

func TestPlaceRepoWithCreator(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "ann@x.com")
	p := &domain.Place{
		ID: "p1", Title: "A", Description: "12345", Image: "p.png", Address: "X",
		Location: domain.Location{Lat: 1.5, Lng: 2.5}, CreatorID: "u1",
	}
	require.NoError(t, s.Places().Create(ctx, p))

	got, err := s.Places().FindByIDWithCreator(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Creator)
	require.Equal(t, "u1", got.Creator.ID)
	require.InDelta(t, 1.5, got.Location.Lat, 1e-9)

	ps, err := s.Places().FindByCreator(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ps, 1)

	users, err := s.Users().ListWithPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, users[0].Places, 1)
	require.Equal(t, "p1", users[0].Places[0].ID)
}

func TestWithTxRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx *Store) error {
		if err := tx.Users().Create(ctx, &domain.User{ID: "u1", Name: "Ann", Email: "ann@x.com", PasswordHash: "x", Image: "i"}); err != nil {
			return err
		}
		if err := tx.Places().Create(ctx, &domain.Place{ID: "p1", Title: "A", Description: "12345", Image: "i", Address: "X", CreatorID: "u1"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// 整体回滚：两条记录都不应存在
	u, err := s.Users().FindByID(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, u)
	p, err := s.Places().FindByID(ctx, "p1")
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestWithTxCommit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx *Store) error {
		return tx.Users().Create(ctx, &domain.User{ID: "u1", Name: "Ann", Email: "ann@x.com", PasswordHash: "x", Image: "i"})
	})
	require.NoError(t, err)

	u, err := s.Users().FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
}
