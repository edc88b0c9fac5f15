package types

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CommentResponse struct {
	ID        uint64     `json:"id"`
	RecipeID  uint64     `json:"recipe_id"`
	UserID    uint64     `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	User      UserPublic `json:"user"`
}

type CommentsListResponse struct {
	Comments []*CommentResponse `json:"comments"`
	Total    int64              `json:"total"`
}
