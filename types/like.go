package types

import "time"

type LikeResponse struct {
	ID        uint64    `json:"id"`
	RecipeID  uint64    `json:"recipe_id"`
	UserID    uint64    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeCountResponse struct {
	RecipeID   uint64 `json:"recipe_id"`
	LikesCount int64  `json:"likes_count"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}
