package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-places-api/internal/core/apperr"
	"go-places-api/internal/core/cache"
	"go-places-api/internal/core/geocode"
)

// newCachedPlaceFixture 带真缓存后端的 fixture（miniredis）
func newCachedPlaceFixture(t *testing.T) (*placeFixture, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)

	store := newTestStore(t)
	geo := &fakeGeo{loc: geocode.LatLng{Lat: 40.7484474, Lng: -73.9871516}}
	images := &fakeImages{}
	f := &placeFixture{
		store:  store,
		users:  NewUserService(store, newTestJWTer(), zap.NewNop()),
		places: NewPlaceService(store, geo, images, c, time.Minute, zap.NewNop()),
		images: images,
		geo:    geo,
	}
	return f, mr
}

func TestGetPlaceByIDServedFromCache(t *testing.T) {
	f, mr := newCachedPlaceFixture(t)
	ctx := context.Background()
	uid := f.signup(t, "Ann", "ann@x.com")
	p := f.createPlace(t, uid)

	got, err := f.places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Empire State Building", got.Title)
	require.True(t, mr.Exists("place:"+p.ID))

	// 绕过 service 直接改库：TTL 内的读仍然走缓存里的旧值
	p.Title = "Changed Behind The Cache"
	require.NoError(t, f.store.Places().Save(ctx, p))

	cached, err := f.places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Empire State Building", cached.Title)

	// TTL 过期后回源拿到新值
	mr.FastForward(2 * time.Minute)
	fresh, err := f.places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Changed Behind The Cache", fresh.Title)
}

func TestUpdateInvalidatesPlaceCache(t *testing.T) {
	f, mr := newCachedPlaceFixture(t)
	ctx := context.Background()
	uid := f.signup(t, "Ann", "ann@x.com")
	p := f.createPlace(t, uid)

	_, err := f.places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists("place:"+p.ID))

	_, err = f.places.Update(ctx, p.ID, "New Title", "new description", uid)
	require.NoError(t, err)
	require.False(t, mr.Exists("place:"+p.ID))

	// 失效后下一次读立即看到更新
	got, err := f.places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "New Title", got.Title)
}

func TestDeleteInvalidatesPlaceCache(t *testing.T) {
	f, mr := newCachedPlaceFixture(t)
	ctx := context.Background()
	uid := f.signup(t, "Ann", "ann@x.com")
	p := f.createPlace(t, uid)

	_, err := f.places.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists("place:"+p.ID))

	// 删除后缓存一并失效，TTL 内的读也必须是 404
	require.NoError(t, f.places.Delete(ctx, p.ID, uid))
	require.False(t, mr.Exists("place:"+p.ID))

	_, err = f.places.GetByID(ctx, p.ID)
	require.Equal(t, http.StatusNotFound, apperr.From(err).Code)
}

func TestMissingPlaceNotCached(t *testing.T) {
	f, mr := newCachedPlaceFixture(t)

	_, err := f.places.GetByID(context.Background(), "nope")
	require.Equal(t, http.StatusNotFound, apperr.From(err).Code)
	require.False(t, mr.Exists("place:nope"))
}
