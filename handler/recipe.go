package handler

import (
	"Recette/config"
	"Recette/middleware"
	"Recette/pkg/context"
	"Recette/pkg/response"
	"Recette/service"
	"Recette/types"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Recipe struct {
	Config        *config.Config
	RecipeService service.IRecipeService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/recipes")
	g.GET("", context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/images", authorize, context.Wrap(h.UploadImages))
}

func (h *Recipe) List(c *gin.Context) error {
	var req types.ListRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	result, err := h.RecipeService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Recipe) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	recipe, err := h.RecipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, recipe)
	return nil
}

func (h *Recipe) Get(c *gin.Context) error {
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	recipe, err := h.RecipeService.Get(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	recipe, err := h.RecipeService.Update(c.Request.Context(), userID, recipeID, &req)
	if err != nil {
		return err
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	if err := h.RecipeService.Delete(c.Request.Context(), userID, recipeID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

// UploadImages 批量上传菜谱图片（multipart 字段 images）
func (h *Recipe) UploadImages(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid recipe id")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "no images in request")
	}

	maxSize := h.Config.Storage.MaxUploadSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxUploadSize
	}

	uploads := make([]service.ImageUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "read upload failed")
		}
		// 超限判定在服务层，这里只截断读取量
		content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
		file.Close()
		if err != nil {
			return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "read upload failed")
		}
		uploads = append(uploads, service.ImageUpload{
			Filename: header.Filename,
			Content:  content,
		})
	}

	images, err := h.RecipeService.UploadImages(c.Request.Context(), userID, recipeID, uploads)
	if err != nil {
		return err
	}
	response.Created(c, types.UploadImagesResponse{Images: images})
	return nil
}

func parseID(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
