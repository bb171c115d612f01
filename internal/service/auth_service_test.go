package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/config"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
	apperrors "github.com/JTSTBP/ATS-sub003/pkg/errorutil"
)

func testAuthConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:               "test-secret",
		AccessTokenTTLMinutes:   5,
		PasswordResetTTLMinutes: 5,
		BcryptCost:              4,
	}}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return hash
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected a domain error, got %v", err)
	require.Equal(t, status, domainErr.HTTPStatus)
}

func TestLoginSucceeds(t *testing.T) {
	users := newFakeUserRepo(domain.User{
		ID: "u-1", Email: "a@example.com", PasswordHash: hashFor(t, "secret123"),
		Designation: domain.DesignationRecruiter, Active: true,
	})
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, PasswordResetRepo: newFakePasswordResetRepo()})

	user, token, exp, err := svc.Login(context.Background(), "a@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))
}

func TestLoginUnknownEmailUnauthorized(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: newFakeUserRepo(), PasswordResetRepo: newFakePasswordResetRepo()})

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLoginDisabledAccountUnauthorized(t *testing.T) {
	users := newFakeUserRepo(domain.User{
		ID: "u-1", Email: "a@example.com", PasswordHash: hashFor(t, "secret123"),
		Designation: domain.DesignationRecruiter, Active: false,
	})
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, PasswordResetRepo: newFakePasswordResetRepo()})

	_, _, _, err := svc.Login(context.Background(), "a@example.com", "secret123")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	users := newFakeUserRepo(domain.User{
		ID: "u-1", Email: "a@example.com", PasswordHash: hashFor(t, "secret123"),
		Designation: domain.DesignationRecruiter, Active: true,
	})
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, PasswordResetRepo: newFakePasswordResetRepo()})

	_, _, _, err := svc.Login(context.Background(), "a@example.com", "wrong")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestChangePasswordWrongCurrentUnauthorized(t *testing.T) {
	users := newFakeUserRepo(domain.User{
		ID: "u-1", Email: "a@example.com", PasswordHash: hashFor(t, "secret123"),
		Designation: domain.DesignationRecruiter, Active: true,
	})
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, PasswordResetRepo: newFakePasswordResetRepo()})

	err := svc.ChangePassword(context.Background(), "u-1", "wrong", "newsecret")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestConfirmPasswordResetExpiredTokenRejected(t *testing.T) {
	users := newFakeUserRepo(domain.User{
		ID: "u-1", Email: "a@example.com", PasswordHash: hashFor(t, "secret123"),
		Designation: domain.DesignationRecruiter, Active: true,
	})
	resets := newFakePasswordResetRepo(repository.PasswordResetToken{
		ID: "reset-1", UserID: "u-1", Token: "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, PasswordResetRepo: resets})

	err := svc.ConfirmPasswordReset(context.Background(), "expired-token", "newsecret")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestConfirmPasswordResetUpdatesHashAndBurnsToken(t *testing.T) {
	users := newFakeUserRepo(domain.User{
		ID: "u-1", Email: "a@example.com", PasswordHash: hashFor(t, "secret123"),
		Designation: domain.DesignationRecruiter, Active: true,
	})
	resets := newFakePasswordResetRepo(repository.PasswordResetToken{
		ID: "reset-1", UserID: "u-1", Token: "good-token",
		ExpiresAt: time.Now().Add(time.Minute),
	})
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, PasswordResetRepo: resets})

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), "good-token", "newsecret"))

	_, _, _, err := svc.Login(context.Background(), "a@example.com", "newsecret")
	require.NoError(t, err)

	// The token is single use.
	err = svc.ConfirmPasswordReset(context.Background(), "good-token", "again")
	requireStatus(t, err, http.StatusBadRequest)
}
