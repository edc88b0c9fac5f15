package service

import (
	"Recette/dao"
	"Recette/models"
	"Recette/pkg/response"
	"Recette/pkg/snowflake"
	"Recette/types"
	"context"
	"time"

	"github.com/sourcegraph/conc"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID, recipeID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	GetByID(ctx context.Context, commentID uint64) (*types.CommentResponse, error)
	ListByRecipe(ctx context.Context, recipeID uint64, limit, offset int) (*types.CommentsListResponse, error)
	Update(ctx context.Context, userID, commentID uint64, req *types.UpdateCommentRequest) (*types.CommentResponse, error)
	Delete(ctx context.Context, userID, commentID uint64) error
}

type CommentService struct {
	CommentDAO  *dao.Comment
	RecipeDAO   *dao.RecipeDAO
	UserService IUserService
}

func (s *CommentService) Create(ctx context.Context, userID, recipeID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("recipe not found")
	}

	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		RecipeID:  recipeID,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, comment)
}

func (s *CommentService) GetByID(ctx context.Context, commentID uint64) (*types.CommentResponse, error) {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, comment)
}

// ListByRecipe 评论列表，作者信息与总数并发取
func (s *CommentService) ListByRecipe(ctx context.Context, recipeID uint64, limit, offset int) (*types.CommentsListResponse, error) {
	exist, err := s.RecipeDAO.IsExist(ctx, "id = ?", recipeID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("recipe not found")
	}

	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	if limit > types.MaxPageSize {
		limit = types.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	comments, err := s.CommentDAO.FindByRecipe(ctx, recipeID, limit, offset)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, comment := range comments {
		userIDs = append(userIDs, comment.UserID)
	}

	var (
		userMap  map[uint64]*models.User
		total    int64
		usersErr error
		totalErr error
		wg       conc.WaitGroup
	)

	wg.Go(func() {
		userMap, usersErr = s.UserService.BatchGetByIDs(ctx, userIDs)
	})
	wg.Go(func() {
		total, totalErr = s.CommentDAO.CountByRecipe(ctx, recipeID)
	})
	wg.Wait()

	if usersErr != nil {
		return nil, usersErr
	}
	if totalErr != nil {
		return nil, totalErr
	}

	resp := &types.CommentsListResponse{
		Comments: make([]*types.CommentResponse, 0, len(comments)),
		Total:    total,
	}
	for _, comment := range comments {
		dto := assembleComment(comment, userMap[comment.UserID])
		resp.Comments = append(resp.Comments, dto)
	}
	return resp, nil
}

// Update 只有评论作者本人可以编辑
func (s *CommentService) Update(ctx context.Context, userID, commentID uint64, req *types.UpdateCommentRequest) (*types.CommentResponse, error) {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, response.Forbidden("not your comment")
	}

	if err := s.CommentDAO.UpdateContent(ctx, commentID, req.Content); err != nil {
		return nil, err
	}
	comment.Content = req.Content
	return s.toResponse(ctx, comment)
}

// Delete 评论作者本人，或所在菜谱的所有者（版主权限）可删
func (s *CommentService) Delete(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		recipe, err := s.RecipeDAO.FindByID(ctx, comment.RecipeID)
		if err != nil {
			return err
		}
		if recipe.UserID != userID {
			return response.Forbidden("you can only delete your own comments or comments on your recipes")
		}
	}

	return s.CommentDAO.Delete(ctx, commentID)
}

func (s *CommentService) findComment(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := s.CommentDAO.FindByID(ctx, commentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NotFound("comment not found")
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) toResponse(ctx context.Context, comment *models.Comment) (*types.CommentResponse, error) {
	userMap, err := s.UserService.BatchGetByIDs(ctx, []uint64{comment.UserID})
	if err != nil {
		return nil, err
	}
	return assembleComment(comment, userMap[comment.UserID]), nil
}

func assembleComment(comment *models.Comment, user *models.User) *types.CommentResponse {
	resp := &types.CommentResponse{
		ID:        comment.ID,
		RecipeID:  comment.RecipeID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if user != nil {
		resp.User = types.UserPublic{
			ID:             user.ID,
			Username:       user.Username,
			Bio:            user.Bio,
			ProfilePicture: user.ProfilePicture,
		}
	}
	return resp
}
