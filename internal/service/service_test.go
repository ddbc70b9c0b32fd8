package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-places-api/internal/core/auth"
	"go-places-api/internal/core/geocode"
	"go-places-api/internal/repo"
)

func newTestStore(t *testing.T) *repo.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := repo.NewStore(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "places-test", TTL: time.Hour}
}

// fakeGeo 固定坐标的地址解析假实现
type fakeGeo struct {
	loc geocode.LatLng
	err error
}

func (f *fakeGeo) Resolve(_ context.Context, _ string) (geocode.LatLng, error) {
	return f.loc, f.err
}

// fakeImages 记录被释放的引用
type fakeImages struct {
	removed []string
	err     error
}

func (f *fakeImages) Remove(ref string) error {
	f.removed = append(f.removed, ref)
	return f.err
}
