package models

import "time"

// Like 点赞记录
// 唯一键: recipe_id + user_id，并发下由约束兜底
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_user,priority:1" json:"recipe_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_recipe_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
