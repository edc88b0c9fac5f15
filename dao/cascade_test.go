package dao

import (
	"context"
	"testing"

	"Recette/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func TestRecipeDeleteCascadesCommentsAndLikes(t *testing.T) {
	db := newTestDB(t)

	owner := seedUser(t, db, "owner", "owner@example.com")
	fan := seedUser(t, db, "fan", "fan@example.com")
	recipe := seedRecipe(t, db, 200, owner.ID, "cake")
	other := seedRecipe(t, db, 201, owner.ID, "bread")

	require.NoError(t, db.Create(&models.Comment{ID: 1, UserID: fan.ID, RecipeID: recipe.ID, Content: "nice"}).Error)
	require.NoError(t, db.Create(&models.Comment{ID: 2, UserID: owner.ID, RecipeID: recipe.ID, Content: "thanks"}).Error)
	require.NoError(t, db.Create(&models.Comment{ID: 3, UserID: fan.ID, RecipeID: other.ID, Content: "also nice"}).Error)
	require.NoError(t, db.Create(&models.Like{RecipeID: recipe.ID, UserID: fan.ID}).Error)
	require.NoError(t, db.Create(&models.Like{RecipeID: recipe.ID, UserID: owner.ID}).Error)
	require.NoError(t, db.Create(&models.Like{RecipeID: other.ID, UserID: fan.ID}).Error)

	// 裸 SQL 删除也要触发级联，约束在引擎层
	require.NoError(t, db.Exec("DELETE FROM recipes WHERE id = ?", recipe.ID).Error)

	assert.Equal(t, int64(0), countRows(t, db, &models.Comment{}, "recipe_id = ?", recipe.ID))
	assert.Equal(t, int64(0), countRows(t, db, &models.Like{}, "recipe_id = ?", recipe.ID))
	assert.Equal(t, int64(1), countRows(t, db, &models.Comment{}, "recipe_id = ?", other.ID))
	assert.Equal(t, int64(1), countRows(t, db, &models.Like{}, "recipe_id = ?", other.ID))
}

func TestUserDeleteCascadesTransitively(t *testing.T) {
	db := newTestDB(t)

	author := seedUser(t, db, "author", "author@example.com")
	visitor := seedUser(t, db, "visitor", "visitor@example.com")
	recipe := seedRecipe(t, db, 300, author.ID, "noodles")

	require.NoError(t, db.Create(&models.Comment{ID: 10, UserID: visitor.ID, RecipeID: recipe.ID, Content: "yum"}).Error)
	require.NoError(t, db.Create(&models.Like{RecipeID: recipe.ID, UserID: visitor.ID}).Error)

	require.NoError(t, NewUsers(db).Delete(context.Background(), author.ID))

	// 作者的菜谱没了，连带别人的评论和点赞也清掉
	assert.Equal(t, int64(0), countRows(t, db, &models.Recipe{}, "id = ?", recipe.ID))
	assert.Equal(t, int64(0), countRows(t, db, &models.Comment{}, "recipe_id = ?", recipe.ID))
	assert.Equal(t, int64(0), countRows(t, db, &models.Like{}, "recipe_id = ?", recipe.ID))

	// 访客自己还在
	assert.Equal(t, int64(1), countRows(t, db, &models.User{}, "id = ?", visitor.ID))
}
