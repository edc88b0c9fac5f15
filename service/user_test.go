package service

import (
	"context"
	"testing"

	"Recette/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, &UserRegisterOpt{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password)

	got, err := env.users.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, &UserRegisterOpt{Username: "bob", Email: "bob@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = env.users.Register(ctx, &UserRegisterOpt{Username: "bob", Email: "other@example.com", Password: "pw123456"})
	require.Error(t, err)
	assert.Equal(t, response.KindConflict, bizKind(t, err))

	_, err = env.users.Register(ctx, &UserRegisterOpt{Username: "other", Email: "bob@example.com", Password: "pw123456"})
	require.Error(t, err)
	assert.Equal(t, response.KindConflict, bizKind(t, err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, &UserRegisterOpt{Username: "carol", Email: "carol@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = env.users.Login(ctx, "carol@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, response.KindUnauthorized, bizKind(t, err))

	_, err = env.users.Login(ctx, "nobody@example.com", "pw123456")
	require.Error(t, err)
	assert.Equal(t, response.KindUnauthorized, bizKind(t, err))
}

func TestUpdateUsernameTaken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, &UserRegisterOpt{Username: "dave", Email: "dave@example.com", Password: "pw123456"})
	require.NoError(t, err)
	eve, err := env.users.Register(ctx, &UserRegisterOpt{Username: "eve", Email: "eve@example.com", Password: "pw123456"})
	require.NoError(t, err)

	name := "dave"
	_, err = env.users.Update(ctx, eve.ID, &UserUpdateOpt{Username: &name})
	require.Error(t, err)
	assert.Equal(t, response.KindConflict, bizKind(t, err))

	bio := "cooking since 2019"
	updated, err := env.users.Update(ctx, eve.ID, &UserUpdateOpt{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "eve", updated.Username)
}
