package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-places-api/internal/core/apperr"
	"go-places-api/internal/core/cache"
	"go-places-api/internal/core/geocode"
	"go-places-api/internal/domain"
	"go-places-api/internal/repo"
	"go-places-api/pkg/utils"
)

// Geocoder 地址解析协作方（测试里换假实现）
type Geocoder interface {
	Resolve(ctx context.Context, address string) (geocode.LatLng, error)
}

// ImageReleaser 删除成功后释放图片资源
type ImageReleaser interface {
	Remove(ref string) error
}

type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Image       string
}

type PlaceService struct {
	store    *repo.Store
	geo      Geocoder
	images   ImageReleaser
	cache    *cache.Cache // 可为 nil（测试 / 未配置 redis）
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewPlaceService(store *repo.Store, geo Geocoder, images ImageReleaser, c *cache.Cache, ttl time.Duration, log *zap.Logger) *PlaceService {
	return &PlaceService{store: store, geo: geo, images: images, cache: c, cacheTTL: ttl, log: log}
}

func placeKey(id string) string { return "place:" + id }

// Create 地址解析 → 校验 creator 存在 → 事务内落库。
// creator 外键即归属关系，事务保证并发读不会看到半成品状态
func (s *PlaceService) Create(ctx context.Context, in CreatePlaceInput, creatorID string) (*domain.Place, error) {
	loc, err := s.geo.Resolve(ctx, in.Address)
	if err != nil {
		return nil, err // geocode 自带状态码，原样上抛
	}

	p := &domain.Place{
		ID:          utils.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Image:       in.Image,
		Address:     in.Address,
		Location:    domain.Location{Lat: loc.Lat, Lng: loc.Lng},
		CreatorID:   creatorID,
	}

	err = s.store.WithTx(ctx, func(tx *repo.Store) error {
		u, err := tx.Users().FindByID(ctx, creatorID)
		if err != nil {
			return apperr.Internal("Creating place failed, please try again.", err)
		}
		if u == nil {
			// token 指向的用户已不存在
			return apperr.NotFound("Could not find user for provided id.")
		}
		if err := tx.Places().Create(ctx, p); err != nil {
			return apperr.Internal("Creating place failed, please try again.", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update 只有 creator 能改 title/description
func (s *PlaceService) Update(ctx context.Context, placeID, title, description, actorID string) (*domain.Place, error) {
	var out *domain.Place
	err := s.store.WithTx(ctx, func(tx *repo.Store) error {
		p, err := tx.Places().FindByID(ctx, placeID)
		if err != nil {
			return apperr.Internal("Something went wrong, could not update place.", err)
		}
		if p == nil {
			return apperr.NotFound("Could not find a place for the provided id.")
		}
		if p.CreatorID != actorID {
			return apperr.Unauthorized("You are not allowed to edit this place.")
		}
		p.Title = strings.TrimSpace(title)
		p.Description = description
		if err := tx.Places().Save(ctx, p); err != nil {
			return apperr.Internal("Something went wrong, could not update place.", err)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, placeID)
	return out, nil
}

// Delete 事务内（归属判定 + 删除）原子生效；图片释放在提交后尽力而为
func (s *PlaceService) Delete(ctx context.Context, placeID, actorID string) error {
	var imageRef string
	err := s.store.WithTx(ctx, func(tx *repo.Store) error {
		p, err := tx.Places().FindByIDWithCreator(ctx, placeID)
		if err != nil {
			return apperr.Internal("Something went wrong, could not delete place.", err)
		}
		if p == nil {
			return apperr.NotFound("Could not find place for this id.")
		}
		if p.Creator == nil || p.Creator.ID != actorID {
			return apperr.Unauthorized("You are not allowed to delete this place.")
		}
		imageRef = p.Image
		if err := tx.Places().Delete(ctx, p); err != nil {
			return apperr.Internal("Could not delete place, please try again.", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, placeID)
	if s.images != nil {
		if err := s.images.Remove(imageRef); err != nil {
			// 删除本身已成功，释放失败只记日志
			s.log.Warn("release place image failed", zap.String("image", imageRef), zap.Error(err))
		}
	}
	return nil
}

// GetByID 读穿缓存；404 不落缓存
func (s *PlaceService) GetByID(ctx context.Context, placeID string) (*domain.Place, error) {
	load := func(ctx context.Context) (*domain.Place, error) {
		p, err := s.store.Places().FindByID(ctx, placeID)
		if err != nil {
			return nil, apperr.Internal("Something went wrong, could not find a place.", err)
		}
		if p == nil {
			return nil, apperr.NotFound("Could not find a place for the provided id.")
		}
		return p, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	p, err := cache.GetOrLoadJSON[domain.Place](s.cache, ctx, placeKey(placeID), s.cacheTTL, load)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Could not find a place for the provided id.")
	}
	return p, nil
}

// GetByCreator 空结果按 404 处理（沿用既有对外行为）
func (s *PlaceService) GetByCreator(ctx context.Context, userID string) ([]domain.Place, error) {
	ps, err := s.store.Places().FindByCreator(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Fetching places failed, please try again later.", err)
	}
	if len(ps) == 0 {
		return nil, apperr.NotFound("Could not find places for the provided user id.")
	}
	return ps, nil
}

func (s *PlaceService) invalidate(ctx context.Context, placeID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, placeKey(placeID))
	}
}
