package handler

import (
	"Recette/config"
	"Recette/pkg/context"
	"Recette/pkg/response"
	"Recette/service"
	"Recette/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/users")
	g.GET("/:id", context.Wrap(u.GetPublicProfile))
}

// GetPublicProfile 公开的用户信息，无需登录
func (u *User) GetPublicProfile(c *gin.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, "invalid user id")
	}

	user, err := u.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.UserPublic{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
	})
	return nil
}
