package service

import (
	"context"
	"testing"

	"Recette/pkg/response"
	"Recette/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateOnMissingRecipe(t *testing.T) {
	env := newTestEnv(t)
	userID := registerUser(t, env, "talker")

	_, err := env.comment.Create(context.Background(), userID, 999999, &types.CreateCommentRequest{Content: "hi"})
	require.Error(t, err)
	assert.Equal(t, response.KindNotFound, bizKind(t, err))
}

func TestCommentListCarriesAuthors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerUser(t, env, "host")
	guest := registerUser(t, env, "guest")
	recipe := createRecipe(t, env, owner, "curry")

	_, err := env.comment.Create(ctx, guest, recipe.ID, &types.CreateCommentRequest{Content: "looks great"})
	require.NoError(t, err)
	_, err = env.comment.Create(ctx, owner, recipe.ID, &types.CreateCommentRequest{Content: "thanks"})
	require.NoError(t, err)

	list, err := env.comment.ListByRecipe(ctx, recipe.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	require.Len(t, list.Comments, 2)

	// 最新的在前
	assert.Equal(t, "thanks", list.Comments[0].Content)
	assert.Equal(t, "host", list.Comments[0].User.Username)
	assert.Equal(t, "guest", list.Comments[1].User.Username)
}

func TestCommentUpdateAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerUser(t, env, "writer")
	other := registerUser(t, env, "editor")
	recipe := createRecipe(t, env, owner, "bao")

	comment, err := env.comment.Create(ctx, owner, recipe.ID, &types.CreateCommentRequest{Content: "v1"})
	require.NoError(t, err)

	_, err = env.comment.Update(ctx, other, comment.ID, &types.UpdateCommentRequest{Content: "vandalized"})
	require.Error(t, err)
	assert.Equal(t, response.KindForbidden, bizKind(t, err))

	updated, err := env.comment.Update(ctx, owner, comment.ID, &types.UpdateCommentRequest{Content: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
}

func TestCommentDeleteAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	recipeOwner := registerUser(t, env, "moderator")
	author := registerUser(t, env, "commenter")
	stranger := registerUser(t, env, "passerby")
	recipe := createRecipe(t, env, recipeOwner, "dumplings")

	first, err := env.comment.Create(ctx, author, recipe.ID, &types.CreateCommentRequest{Content: "one"})
	require.NoError(t, err)
	second, err := env.comment.Create(ctx, author, recipe.ID, &types.CreateCommentRequest{Content: "two"})
	require.NoError(t, err)

	// 路人不行
	err = env.comment.Delete(ctx, stranger, first.ID)
	require.Error(t, err)
	assert.Equal(t, response.KindForbidden, bizKind(t, err))

	// 作者本人可删
	require.NoError(t, env.comment.Delete(ctx, author, first.ID))

	// 菜谱所有者可删别人的评论
	require.NoError(t, env.comment.Delete(ctx, recipeOwner, second.ID))

	list, err := env.comment.ListByRecipe(ctx, recipe.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Total)
}

func TestCommentDeleteMissing(t *testing.T) {
	env := newTestEnv(t)
	userID := registerUser(t, env, "ghosthunter")

	err := env.comment.Delete(context.Background(), userID, 123456)
	require.Error(t, err)
	assert.Equal(t, response.KindNotFound, bizKind(t, err))
}
