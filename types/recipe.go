package types

import "time"

// Pagination 分页常量
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Ingredient struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type CreateRecipeRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=200"`
	Description string       `json:"description" binding:"required"`
	PrepTime    int          `json:"prep_time"`
	CookTime    int          `json:"cook_time"`
	Servings    int          `json:"servings"`
	Difficulty  string       `json:"difficulty"`
	Category    string       `json:"category"`
	Ingredients []Ingredient `json:"ingredients" binding:"required,min=1,dive"`
	Steps       []string     `json:"steps" binding:"required,min=1"`
	Tags        []string     `json:"tags"`
}

type UpdateRecipeRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	PrepTime    *int          `json:"prep_time"`
	CookTime    *int          `json:"cook_time"`
	Servings    *int          `json:"servings"`
	Difficulty  *string       `json:"difficulty"`
	Category    *string       `json:"category"`
	Ingredients []Ingredient  `json:"ingredients"`
	Steps       []string      `json:"steps"`
	Tags        []string      `json:"tags"`
}

type ListRecipesRequest struct {
	Skip       int    `form:"skip"`
	Limit      int    `form:"limit"`
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	Search     string `form:"search"`
}

// RecipeResponse 菜谱详情，带点赞/评论计数
type RecipeResponse struct {
	ID            uint64       `json:"id"`
	UserID        uint64       `json:"user_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	PrepTime      int          `json:"prep_time"`
	CookTime      int          `json:"cook_time"`
	Servings      int          `json:"servings"`
	Difficulty    string       `json:"difficulty"`
	Category      string       `json:"category"`
	Ingredients   []Ingredient `json:"ingredients"`
	Steps         []string     `json:"steps"`
	Images        []string     `json:"images"`
	Tags          []string     `json:"tags"`
	LikesCount    int64        `json:"likes_count"`
	CommentsCount int64        `json:"comments_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type ListRecipesResponse struct {
	Recipes []*RecipeResponse `json:"recipes"`
	Total   int64             `json:"total"`
}
