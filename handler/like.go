package handler

import (
	"Recette/config"
	"Recette/middleware"
	"Recette/pkg/context"
	"Recette/pkg/response"
	"Recette/service"
	"Recette/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/recipes")
	g.POST("/:id/like", authorize, context.Wrap(h.Toggle))
	g.GET("/:id/likes", context.Wrap(h.List))
	g.GET("/:id/likes/count", context.Wrap(h.Count))
	g.GET("/:id/likes/me", authorize, context.Wrap(h.Me))
}

// Toggle 点赞开关，点赞返回 201，取消返回 204
func (h *Like) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	liked, like, err := h.LikeService.Toggle(c.Request.Context(), userID, recipeID)
	if err != nil {
		return err
	}
	if liked {
		response.Created(c, like)
	} else {
		response.NoContent(c)
	}
	return nil
}

func (h *Like) List(c *gin.Context) error {
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	likes, err := h.LikeService.List(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (h *Like) Count(c *gin.Context) error {
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	count, err := h.LikeService.Count(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikeCountResponse{RecipeID: recipeID, LikesCount: count})
	return nil
}

func (h *Like) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	liked, err := h.LikeService.IsLiked(c.Request.Context(), userID, recipeID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikedResponse{Liked: liked})
	return nil
}
