package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mil-can/milcan-api/internal/domain"
)

func TestSignup_HashesPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "alex@example.com",
		Password: "passw0rd123",
		Role:     domain.RoleCreator,
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	stored := repo.byEmail["alex@example.com"]
	assert.NotEqual(t, "passw0rd123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("passw0rd123")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "alex@example.com", Password: "passw0rd123"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "alex@example.com", Password: "0therpass99"})

	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "alex@example.com", Password: "passw0rd123"})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "alex@example.com", "passw0rd123")

	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "alex@example.com", Password: "passw0rd123"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alex@example.com", "wrongpass1")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "passw0rd123")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
