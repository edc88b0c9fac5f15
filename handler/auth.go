package handler

import (
	"Recette/config"
	"Recette/middleware"
	"Recette/models"
	"Recette/pkg/context"
	"Recette/pkg/jwt"
	"Recette/pkg/response"
	"Recette/service"
	"Recette/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
	g.GET("/me", authorize, context.Wrap(a.Me))
	g.PUT("/me", authorize, context.Wrap(a.UpdateMe))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	user, err := a.UserService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	response.Created(c, toProfile(user))
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	user, err := a.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	expire := time.Duration(a.Config.Jwt.ExpiresMinutes) * time.Minute
	if expire <= 0 {
		expire = time.Hour
	}
	token, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), user.ID, user.Email, "access", expire)
	if err != nil {
		return err
	}

	response.Success(c, types.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toProfile(user),
	})
	return nil
}

func (a *Auth) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}

	user, err := a.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, toProfile(user))
	return nil
}

func (a *Auth) UpdateMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "not logged in")
	}

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewKindError(http.StatusBadRequest, response.KindBadRequest, err.Error())
	}

	user, err := a.UserService.Update(c.Request.Context(), userID, &service.UserUpdateOpt{
		Username:       req.Username,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return err
	}
	response.Success(c, toProfile(user))
	return nil
}

func toProfile(user *models.User) types.UserProfile {
	return types.UserProfile{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}
}
