package service

import (
	"Recette/dao"
	"Recette/models"
	"Recette/pkg/log"
	"Recette/pkg/response"
	"Recette/pkg/snowflake"
	"Recette/types"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var _ IRecipeService = (*RecipeService)(nil)

type IRecipeService interface {
	Create(ctx context.Context, userID uint64, req *types.CreateRecipeRequest) (*types.RecipeResponse, error)
	Get(ctx context.Context, recipeID uint64) (*types.RecipeResponse, error)
	List(ctx context.Context, req *types.ListRecipesRequest) (*types.ListRecipesResponse, error)
	Update(ctx context.Context, userID, recipeID uint64, req *types.UpdateRecipeRequest) (*types.RecipeResponse, error)
	Delete(ctx context.Context, userID, recipeID uint64) error
	UploadImages(ctx context.Context, userID, recipeID uint64, uploads []ImageUpload) ([]string, error)
}

type RecipeService struct {
	RecipeDAO  *dao.RecipeDAO
	CommentDAO *dao.Comment
	LikeDAO    *dao.LikeDAO
	Media      IMediaService
}

// Create 创建菜谱，结构化字段序列化进 JSON 列
func (s *RecipeService) Create(ctx context.Context, userID uint64, req *types.CreateRecipeRequest) (*types.RecipeResponse, error) {
	if req.Tags == nil {
		req.Tags = make([]string, 0)
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := json.Marshal(req.Steps)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, err
	}
	images, _ := json.Marshal([]string{})

	recipe := &models.Recipe{
		ID:          uint64(snowflake.GenID()),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		Ingredients: ingredients,
		Steps:       steps,
		Images:      images,
		Tags:        tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.RecipeDAO.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, recipe)
}

func (s *RecipeService) Get(ctx context.Context, recipeID uint64) (*types.RecipeResponse, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, recipe)
}

func (s *RecipeService) List(ctx context.Context, req *types.ListRecipesRequest) (*types.ListRecipesResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	if limit > types.MaxPageSize {
		limit = types.MaxPageSize
	}
	offset := req.Skip
	if offset < 0 {
		offset = 0
	}

	recipes, total, err := s.RecipeDAO.List(ctx, dao.RecipeFilter{
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Search:     req.Search,
	}, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &types.ListRecipesResponse{
		Recipes: make([]*types.RecipeResponse, 0, len(recipes)),
		Total:   total,
	}
	for _, recipe := range recipes {
		dto, err := s.toResponse(ctx, recipe)
		if err != nil {
			return nil, err
		}
		resp.Recipes = append(resp.Recipes, dto)
	}
	return resp, nil
}

func (s *RecipeService) Update(ctx context.Context, userID, recipeID uint64, req *types.UpdateRecipeRequest) (*types.RecipeResponse, error) {
	recipe, err := s.findOwnedRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PrepTime != nil {
		updates["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		updates["cook_time"] = *req.CookTime
	}
	if req.Servings != nil {
		updates["servings"] = *req.Servings
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Ingredients != nil {
		data, err := json.Marshal(req.Ingredients)
		if err != nil {
			return nil, err
		}
		updates["ingredients"] = datatypes.JSON(data)
	}
	if req.Steps != nil {
		data, err := json.Marshal(req.Steps)
		if err != nil {
			return nil, err
		}
		updates["steps"] = datatypes.JSON(data)
	}
	if req.Tags != nil {
		data, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = datatypes.JSON(data)
	}

	if err := s.RecipeDAO.Update(ctx, recipe.ID, updates); err != nil {
		return nil, err
	}
	return s.Get(ctx, recipeID)
}

// Delete 删除菜谱。先提交行删除（评论/点赞由外键级联），
// 提交成功后再清理图片文件；清理失败只记日志，不回滚已提交的删除。
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID uint64) error {
	recipe, err := s.findOwnedRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	images := decodeStringList(recipe.Images)

	if err := s.RecipeDAO.Delete(ctx, recipe.ID); err != nil {
		return err
	}

	for _, name := range images {
		if err := s.Media.DeleteImage(name); err != nil {
			log.L.Error("cleanup recipe image", zap.Uint64("recipe_id", recipeID),
				zap.String("stored", name), zap.Error(err))
		}
	}
	return nil
}

// UploadImages 批量上传图片并追加到菜谱图片列表
func (s *RecipeService) UploadImages(ctx context.Context, userID, recipeID uint64, uploads []ImageUpload) ([]string, error) {
	recipe, err := s.findOwnedRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	saved, err := s.Media.SaveImages(uploads)
	if err != nil {
		return nil, err
	}

	images := append(decodeStringList(recipe.Images), saved...)
	data, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	if err := s.RecipeDAO.UpdateImages(ctx, recipe.ID, data); err != nil {
		// 行更新失败时文件不能落盘残留
		for _, name := range saved {
			if derr := s.Media.DeleteImage(name); derr != nil {
				log.L.Error("rollback uploaded image", zap.String("stored", name), zap.Error(derr))
			}
		}
		return nil, err
	}
	return images, nil
}

func (s *RecipeService) findRecipe(ctx context.Context, recipeID uint64) (*models.Recipe, error) {
	recipe, err := s.RecipeDAO.FindByID(ctx, recipeID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NotFound("recipe not found")
		}
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) findOwnedRecipe(ctx context.Context, userID, recipeID uint64) (*models.Recipe, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, response.Forbidden("not your recipe")
	}
	return recipe, nil
}

func (s *RecipeService) toResponse(ctx context.Context, recipe *models.Recipe) (*types.RecipeResponse, error) {
	likes, err := s.LikeDAO.CountByRecipe(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.CountByRecipe(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	var ingredients []types.Ingredient
	if len(recipe.Ingredients) > 0 {
		if err := json.Unmarshal(recipe.Ingredients, &ingredients); err != nil {
			return nil, err
		}
	}

	return &types.RecipeResponse{
		ID:            recipe.ID,
		UserID:        recipe.UserID,
		Title:         recipe.Title,
		Description:   recipe.Description,
		PrepTime:      recipe.PrepTime,
		CookTime:      recipe.CookTime,
		Servings:      recipe.Servings,
		Difficulty:    recipe.Difficulty,
		Category:      recipe.Category,
		Ingredients:   ingredients,
		Steps:         decodeStringList(recipe.Steps),
		Images:        decodeStringList(recipe.Images),
		Tags:          decodeStringList(recipe.Tags),
		LikesCount:    likes,
		CommentsCount: comments,
		CreatedAt:     recipe.CreatedAt,
		UpdatedAt:     recipe.UpdatedAt,
	}, nil
}

func decodeStringList(data []byte) []string {
	list := make([]string, 0)
	if len(data) == 0 {
		return list
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return make([]string, 0)
	}
	return list
}
