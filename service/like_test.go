package service

import (
	"context"
	"testing"
	"time"

	"Recette/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 指向不可达地址的客户端，验证缓存故障时回源数据库
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newLikeService(env *testEnv) *LikeService {
	return &LikeService{
		LikeDAO:   env.recipes.LikeDAO,
		RecipeDAO: env.recipes.RecipeDAO,
		Redis:     deadRedis(),
	}
}

func TestLikeToggleAndCountWithoutCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerUser(t, env, "baker")
	fan := registerUser(t, env, "fanatic")
	recipe := createRecipe(t, env, owner, "croissant")
	likes := newLikeService(env)

	liked, like, err := likes.Toggle(ctx, fan, recipe.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	require.NotNil(t, like)
	assert.Equal(t, fan, like.UserID)

	count, err := likes.Count(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	isLiked, err := likes.IsLiked(ctx, fan, recipe.ID)
	require.NoError(t, err)
	assert.True(t, isLiked)

	liked, like, err = likes.Toggle(ctx, fan, recipe.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Nil(t, like)

	count, err = likes.Count(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLikeOnMissingRecipe(t *testing.T) {
	env := newTestEnv(t)
	userID := registerUser(t, env, "eager")
	likes := newLikeService(env)

	_, _, err := likes.Toggle(context.Background(), userID, 555555)
	require.Error(t, err)
	assert.Equal(t, response.KindNotFound, bizKind(t, err))
}

func TestLikeList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerUser(t, env, "cook")
	a := registerUser(t, env, "first")
	b := registerUser(t, env, "second")
	recipe := createRecipe(t, env, owner, "focaccia")
	likes := newLikeService(env)

	_, _, err := likes.Toggle(ctx, a, recipe.ID)
	require.NoError(t, err)
	_, _, err = likes.Toggle(ctx, b, recipe.ID)
	require.NoError(t, err)

	list, err := likes.List(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
