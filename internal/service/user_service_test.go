package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.userSvc.Create(ctx, "Alice", "s3cret", domain.RoleAdmin, domain.TeamAgency)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestUserService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.userSvc.Create(ctx, "Alice", "s3cret", domain.RoleMember, domain.TeamAgency)
	require.NoError(t, err)

	u, err := env.userSvc.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)

	_, err = env.userSvc.Authenticate(ctx, "Alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.userSvc.Authenticate(ctx, "Nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_UpdateKeepsHashOnEmptyPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.userSvc.Create(ctx, "Bob", "original", domain.RoleMember, domain.TeamVerticals)
	require.NoError(t, err)
	originalHash := u.PasswordHash

	u.Team = domain.TeamAgency
	require.NoError(t, env.userSvc.Update(ctx, u, ""))

	fetched, err := env.userSvc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, originalHash, fetched.PasswordHash)
	assert.Equal(t, domain.TeamAgency, fetched.Team)

	require.NoError(t, env.userSvc.Update(ctx, u, "changed"))
	_, err = env.userSvc.Authenticate(ctx, "Bob", "changed")
	assert.NoError(t, err)
	_, err = env.userSvc.Authenticate(ctx, "Bob", "original")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.userSvc.Create(ctx, "Gone", "pw", domain.RoleMember, domain.TeamAgency)
	require.NoError(t, err)

	require.NoError(t, env.userSvc.Delete(ctx, u.ID))
	_, err = env.userSvc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
