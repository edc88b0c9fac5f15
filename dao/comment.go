package dao

import (
	"Recette/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// FindByRecipe 菜谱下的评论列表（按时间倒序）
func (d *Comment) FindByRecipe(ctx context.Context, recipeID uint64, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (d *Comment) CountByRecipe(ctx context.Context, recipeID uint64) (int64, error) {
	return d.CountByWhere(ctx, "recipe_id = ?", recipeID)
}

func (d *Comment) UpdateContent(ctx context.Context, commentID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

func (d *Comment) Delete(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).Delete(&models.Comment{}, commentID).Error
}
