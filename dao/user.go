package dao

import (
	"Recette/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsUsernameOrEmailExist 注册前查重
func (u *Users) IsUsernameOrEmailExist(ctx context.Context, username, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ? OR email = ?", username, email)
}

// IsUsernameTakenByOther 改名查重，排除本人
func (u *Users) IsUsernameTakenByOther(ctx context.Context, username string, userID uint64) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ? AND id <> ?", username, userID)
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

// Delete 删除用户，菜谱/评论/点赞由外键级联清理
func (u *Users) Delete(ctx context.Context, userID uint64) error {
	return u.Db.WithContext(ctx).Delete(&models.User{}, userID).Error
}

// FindByIDs 批量查询用户
func (u *Users) FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
