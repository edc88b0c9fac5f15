package models

import (
	"time"
)

type User struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email          string    `gorm:"column:email;type:varchar(320);not null;uniqueIndex" json:"email"`
	Password       string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Bio            string    `gorm:"column:bio;type:text" json:"bio"`
	ProfilePicture string    `gorm:"column:profile_picture;type:varchar(500)" json:"profile_picture"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	// 级联删除: 删除用户时清理其菜谱/评论/点赞
	Recipes  []Recipe  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
