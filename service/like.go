package service

import (
	"Recette/dao"
	"Recette/pkg/log"
	"Recette/pkg/response"
	"Recette/types"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 点赞数缓存，toggle 时失效
const (
	recipeLikeCountKey = "recipe:like:count:%d"
	likeCountCacheTTL  = 10 * time.Minute
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// Toggle 点赞开关，返回切换后的状态
	Toggle(ctx context.Context, userID, recipeID uint64) (bool, *types.LikeResponse, error)
	List(ctx context.Context, recipeID uint64) ([]*types.LikeResponse, error)
	Count(ctx context.Context, recipeID uint64) (int64, error)
	IsLiked(ctx context.Context, userID, recipeID uint64) (bool, error)
}

type LikeService struct {
	LikeDAO   *dao.LikeDAO
	RecipeDAO *dao.RecipeDAO
	Redis     *redis.Client
}

func (s *LikeService) Toggle(ctx context.Context, userID, recipeID uint64) (bool, *types.LikeResponse, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return false, nil, err
	}

	liked, like, err := s.LikeDAO.Toggle(ctx, recipeID, userID)
	if err != nil {
		return false, nil, err
	}

	// 缓存失效尽力而为，失败不影响已提交的状态切换
	key := fmt.Sprintf(recipeLikeCountKey, recipeID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		log.L.Warn("invalidate like count cache", zap.Uint64("recipe_id", recipeID), zap.Error(err))
	}

	if !liked {
		return false, nil, nil
	}
	return true, &types.LikeResponse{
		ID:        like.ID,
		RecipeID:  like.RecipeID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}, nil
}

func (s *LikeService) List(ctx context.Context, recipeID uint64) ([]*types.LikeResponse, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}

	likes, err := s.LikeDAO.FindByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	resp := make([]*types.LikeResponse, 0, len(likes))
	for _, like := range likes {
		resp = append(resp, &types.LikeResponse{
			ID:        like.ID,
			RecipeID:  like.RecipeID,
			UserID:    like.UserID,
			CreatedAt: like.CreatedAt,
		})
	}
	return resp, nil
}

// Count 点赞数，优先读缓存，未命中或 Redis 不可用回源数据库
func (s *LikeService) Count(ctx context.Context, recipeID uint64) (int64, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return 0, err
	}

	key := fmt.Sprintf(recipeLikeCountKey, recipeID)
	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		if count, perr := strconv.ParseInt(cached, 10, 64); perr == nil {
			return count, nil
		}
	}

	count, err := s.LikeDAO.CountByRecipe(ctx, recipeID)
	if err != nil {
		return 0, err
	}

	if err := s.Redis.Set(ctx, key, count, likeCountCacheTTL).Err(); err != nil {
		log.L.Warn("set like count cache", zap.Uint64("recipe_id", recipeID), zap.Error(err))
	}
	return count, nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID, recipeID uint64) (bool, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return false, err
	}
	return s.LikeDAO.IsLiked(ctx, recipeID, userID)
}

func (s *LikeService) requireRecipe(ctx context.Context, recipeID uint64) error {
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("recipe not found")
	}
	return nil
}
