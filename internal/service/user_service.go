package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-places-api/internal/core/apperr"
	"go-places-api/internal/core/auth"
	"go-places-api/internal/domain"
	"go-places-api/internal/repo"
	"go-places-api/pkg/utils"
)

// AuthResult 注册/登录的统一出参
type AuthResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type UserService struct {
	store *repo.Store
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserService(store *repo.Store, jwter *auth.JWTer, log *zap.Logger) *UserService {
	return &UserService{store: store, jwter: jwter, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup 邮箱唯一性检查 → 哈希 → 落库 → 发 token
func (s *UserService) Signup(ctx context.Context, name, email, password, image string) (*AuthResult, error) {
	email = normalizeEmail(email)

	existing, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("Signing up failed, please try again later.", err)
	}
	if existing != nil {
		s.log.Warn("signup rejected: email taken", zap.String("email", email))
		return nil, apperr.Unprocessable("User exists already, please login instead.")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("Could not create user, please try again.", err)
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Image:        image,
		Places:       []domain.Place{},
	}
	if err := s.store.Users().Create(ctx, u); err != nil {
		// 并发兜底：两个请求同时过了唯一性检查，落库时撞唯一索引
		if repo.IsDupKey(err) {
			s.log.Warn("signup rejected: unique index race", zap.String("email", email))
			return nil, apperr.Unprocessable("User exists already, please login instead.")
		}
		s.log.Error("signup store failure", zap.Error(err))
		return nil, apperr.Internal("Signup failed, please try again.", err)
	}

	tok, err := s.jwter.Issue(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("Signup failed, please try again.", err)
	}
	return &AuthResult{UserID: u.ID, Email: u.Email, Token: tok}, nil
}

// Login 故意保持 401（查无此邮箱）/ 403（密码不符）两个状态码，
// 但文案一致，不向调用方泄露是哪一步失败
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	u, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("Logging in failed, please try again later.", err)
	}
	if u == nil {
		s.log.Warn("login rejected: unknown email", zap.String("email", email))
		return nil, apperr.Unauthorized("Invalid credentials, could not log you in.")
	}

	ok, err := utils.CheckPassword(password, u.PasswordHash)
	if err != nil {
		return nil, apperr.Internal("Could not log you in, please try again.", err)
	}
	if !ok {
		s.log.Warn("login rejected: password mismatch", zap.String("email", email))
		return nil, apperr.Forbidden("Invalid credentials, could not log you in.")
	}

	tok, err := s.jwter.Issue(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("Login failed, please try again.", err)
	}
	return &AuthResult{UserID: u.ID, Email: u.Email, Token: tok}, nil
}

// ListUsers 全量用户（不含密码哈希，模型上 json:"-"）
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.Users().ListWithPlaces(ctx)
	if err != nil {
		return nil, apperr.Internal("Fetching users failed, please try again later.", err)
	}
	return users, nil
}
