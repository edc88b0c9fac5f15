package models

import (
	"time"

	"gorm.io/datatypes"
)

type Recipe struct {
	ID          uint64         `gorm:"column:id;primaryKey" json:"id"`
	UserID      uint64         `gorm:"column:user_id;not null;index:idx_recipes_user_id" json:"user_id"`
	Title       string         `gorm:"column:title;type:varchar(200);not null;index" json:"title"`
	Description string         `gorm:"column:description;type:text;not null" json:"description"`
	PrepTime    int            `gorm:"column:prep_time" json:"prep_time"`
	CookTime    int            `gorm:"column:cook_time" json:"cook_time"`
	Servings    int            `gorm:"column:servings" json:"servings"`
	Difficulty  string         `gorm:"column:difficulty;type:varchar(20)" json:"difficulty"`
	Category    string         `gorm:"column:category;type:varchar(50);index" json:"category"`
	Ingredients datatypes.JSON `gorm:"column:ingredients" json:"ingredients"`
	Steps       datatypes.JSON `gorm:"column:steps" json:"steps"`
	Images      datatypes.JSON `gorm:"column:images" json:"images"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	CreatedAt   time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}
