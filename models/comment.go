package models

import (
	"time"
)

// Comment 评论表结构
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comments_user_id" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;index:idx_recipe_id" json:"recipe_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
