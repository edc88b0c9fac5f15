package dao

import (
	"Recette/models"
	"context"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// RecipeFilter 列表过滤条件
type RecipeFilter struct {
	Category   string
	Difficulty string
	Search     string
}

func (d *RecipeDAO) List(ctx context.Context, f RecipeFilter, limit, offset int) ([]*models.Recipe, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Recipe{})
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*models.Recipe
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	return recipes, total, err
}

func (d *RecipeDAO) Update(ctx context.Context, recipeID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Updates(updates).Error
}

// UpdateImages 覆盖图片列表 JSON 列
func (d *RecipeDAO) UpdateImages(ctx context.Context, recipeID uint64, images []byte) error {
	return d.Db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("images", images).Error
}

// Delete 删除菜谱行，评论/点赞由外键级联清理
func (d *RecipeDAO) Delete(ctx context.Context, recipeID uint64) error {
	return d.Db.WithContext(ctx).Delete(&models.Recipe{}, recipeID).Error
}
