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

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	recipes := r.Group("/v1/recipes")
	recipes.POST("/:id/comments", authorize, context.Wrap(h.Create))
	recipes.GET("/:id/comments", context.Wrap(h.ListByRecipe))

	comments := r.Group("/v1/comments")
	comments.GET("/:id", context.Wrap(h.Get))
	comments.PUT("/:id", authorize, context.Wrap(h.Update))
	comments.DELETE("/:id", authorize, context.Wrap(h.Delete))
}

func (h *Comment) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	comment, err := h.CommentService.Create(c.Request.Context(), userID, recipeID, &req)
	if err != nil {
		return err
	}
	response.Created(c, comment)
	return nil
}

func (h *Comment) ListByRecipe(c *gin.Context) error {
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	var page struct {
		Skip  int `form:"skip,default=0" binding:"gte=0"`
		Limit int `form:"limit,default=20" binding:"gte=1,lte=100"`
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	result, err := h.CommentService.ListByRecipe(c.Request.Context(), recipeID, page.Limit, page.Skip)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Comment) Get(c *gin.Context) error {
	commentID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid comment id")
	}

	comment, err := h.CommentService.GetByID(c.Request.Context(), commentID)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	commentID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid comment id")
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	comment, err := h.CommentService.Update(c.Request.Context(), userID, commentID, &req)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	commentID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid comment id")
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
