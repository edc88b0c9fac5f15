package dao

import (
	"context"
	"testing"

	"Recette/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLikeToggleCycle(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", "alice@example.com")
	recipe := seedRecipe(t, db, 100, user.ID, "soup")

	liked, like, err := d.Toggle(ctx, recipe.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	require.NotNil(t, like)
	assert.Equal(t, recipe.ID, like.RecipeID)

	count, err := d.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, _, err = d.Toggle(ctx, recipe.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = d.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	liked, _, err = d.Toggle(ctx, recipe.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeUniquePerUserRecipe(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "bob", "bob@example.com")
	recipe := seedRecipe(t, db, 101, user.ID, "stew")

	require.NoError(t, db.Create(&models.Like{RecipeID: recipe.ID, UserID: user.ID}).Error)
	err := db.Create(&models.Like{RecipeID: recipe.ID, UserID: user.ID}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	d := NewLikeDAO(db)
	count, err := d.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLikeGetByRecipeUserMissing(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)

	like, err := d.GetByRecipeUser(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Nil(t, like)
}

func TestLikeIsLiked(t *testing.T) {
	db := newTestDB(t)
	d := NewLikeDAO(db)
	ctx := context.Background()

	user := seedUser(t, db, "carol", "carol@example.com")
	recipe := seedRecipe(t, db, 102, user.ID, "pie")

	liked, err := d.IsLiked(ctx, recipe.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, _, err = d.Toggle(ctx, recipe.ID, user.ID)
	require.NoError(t, err)

	liked, err = d.IsLiked(ctx, recipe.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}
