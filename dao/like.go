package dao

import (
	"Recette/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// GetByRecipeUser 查询指定用户对指定菜谱的点赞记录，不存在返回 nil
func (d *LikeDAO) GetByRecipeUser(ctx context.Context, recipeID, userID uint64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).Where("recipe_id = ? AND user_id = ?", recipeID, userID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Toggle 点赞开关：无记录则创建，有记录则删除。
// check-then-act 放在一个事务里，唯一索引 uk_recipe_user 兜底并发双写。
func (d *LikeDAO) Toggle(ctx context.Context, recipeID, userID uint64) (liked bool, like *models.Like, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		if err := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		if existing.ID != 0 {
			liked = false
			return tx.Delete(&models.Like{}, existing.ID).Error
		}
		created := &models.Like{RecipeID: recipeID, UserID: userID}
		if err := tx.Create(created).Error; err != nil {
			return err
		}
		liked = true
		like = created
		return nil
	})

	// 并发双 toggle: 两边都没查到记录，后写的一方撞唯一索引。
	// 视为已点赞状态，返回既有记录。
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, ferr := d.GetByRecipeUser(ctx, recipeID, userID)
		if ferr == nil && existing != nil {
			return true, existing, nil
		}
		return false, nil, err
	}
	return liked, like, err
}

func (d *LikeDAO) FindByRecipe(ctx context.Context, recipeID uint64) ([]*models.Like, error) {
	var likes []*models.Like
	err := d.Db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&likes).Error
	return likes, err
}

func (d *LikeDAO) CountByRecipe(ctx context.Context, recipeID uint64) (int64, error) {
	return d.CountByWhere(ctx, "recipe_id = ?", recipeID)
}

// IsLiked 是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, recipeID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "recipe_id = ? AND user_id = ?", recipeID, userID)
}
