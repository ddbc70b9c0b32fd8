package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"go-places-api/internal/core/apperr"
)

func newUserSvc(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(newTestStore(t), newTestJWTer(), zap.NewNop())
}

func TestSignupAndLogin(t *testing.T) {
	svc := newUserSvc(t)
	ctx := context.Background()

	out, err := svc.Signup(ctx, "Ann", "ann@x.com", "secret1", "uploads/images/a.png")
	require.NoError(t, err)
	require.NotEmpty(t, out.UserID)
	require.Equal(t, "ann@x.com", out.Email)

	// 签出的 token 里就是这个用户
	claims, err := newTestJWTer().Parse(out.Token)
	require.NoError(t, err)
	require.Equal(t, out.UserID, claims.UserID)
	require.Equal(t, "ann@x.com", claims.Email)

	in, err := svc.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, out.UserID, in.UserID)

	claims2, err := newTestJWTer().Parse(in.Token)
	require.NoError(t, err)
	require.Equal(t, claims.UserID, claims2.UserID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newUserSvc(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ann", "ann@x.com", "secret1", "i")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Ann Again", "ann@x.com", "different", "i")
	require.Error(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, apperr.From(err).Code)
}

func TestSignupNormalizesEmail(t *testing.T) {
	svc := newUserSvc(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ann", "  Ann@X.com ", "secret1", "i")
	require.NoError(t, err)

	// 大小写/空白不同的同一邮箱视为已注册
	_, err = svc.Signup(ctx, "Ann", "ann@x.com", "secret1", "i")
	require.Equal(t, http.StatusUnprocessableEntity, apperr.From(err).Code)

	out, err := svc.Login(ctx, "ANN@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", out.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newUserSvc(t)

	_, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, apperr.From(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newUserSvc(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ann", "ann@x.com", "secret1", "i")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ann@x.com", "wrongpass")
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperr.From(err).Code)
}

func TestAuthRejectionsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewUserService(newTestStore(t), newTestJWTer(), zap.New(core))
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ann", "ann@x.com", "secret1", "i")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Ann Again", "ann@x.com", "different", "i")
	require.Error(t, err)
	require.Len(t, logs.FilterMessage("signup rejected: email taken").All(), 1)

	_, err = svc.Login(ctx, "ghost@x.com", "whatever")
	require.Error(t, err)
	require.Len(t, logs.FilterMessage("login rejected: unknown email").All(), 1)

	_, err = svc.Login(ctx, "ann@x.com", "wrongpass")
	require.Error(t, err)
	require.Len(t, logs.FilterMessage("login rejected: password mismatch").All(), 1)

	// 日志里只出现邮箱，密码永远不落日志
	for _, e := range logs.All() {
		for _, f := range e.Context {
			require.NotContains(t, f.String, "secret1")
			require.NotContains(t, f.String, "wrongpass")
		}
	}
}

func TestListUsersHidesNothingButPassword(t *testing.T) {
	svc := newUserSvc(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ann", "ann@x.com", "secret1", "i")
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "ann@x.com", users[0].Email)
	require.Empty(t, users[0].Places)
}
