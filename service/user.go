package service

import (
	"Recette/dao"
	"Recette/models"
	"Recette/pkg/encrypt"
	"Recette/pkg/response"
	"context"
	"net/http"

	"gorm.io/gorm"
	"errors"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error)
	Login(ctx context.Context, email string, password string) (*models.User, error)
	GetByID(ctx context.Context, userID uint64) (*models.User, error)
	Update(ctx context.Context, userID uint64, updates *UserUpdateOpt) (*models.User, error)
	BatchGetByIDs(ctx context.Context, userIDs []uint64) (map[uint64]*models.User, error)
}

type UserService struct {
	UsersRepo *dao.Users
}

type UserRegisterOpt struct {
	Username string
	Email    string
	Password string
}

type UserUpdateOpt struct {
	Username       *string
	Bio            *string
	ProfilePicture *string
}

// Register 注册用户，用户名/邮箱查重，密码 bcrypt 存储
func (s *UserService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error) {
	exist, err := s.UsersRepo.IsUsernameOrEmailExist(ctx, opt.Username, opt.Email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.Conflict("email or username already registered")
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: opt.Username,
		Email:    opt.Email,
		Password: hash,
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册撞唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("email or username already registered")
		}
		return nil, err
	}

	return user, nil
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, email string, password string) (*models.User, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "incorrect email or password")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.NewKindError(http.StatusUnauthorized, response.KindUnauthorized, "incorrect email or password")
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, userID uint64, opt *UserUpdateOpt) (*models.User, error) {
	updates := make(map[string]any)
	if opt.Username != nil {
		taken, err := s.UsersRepo.IsUsernameTakenByOther(ctx, *opt.Username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, response.Conflict("username already taken")
		}
		updates["username"] = *opt.Username
	}
	if opt.Bio != nil {
		updates["bio"] = *opt.Bio
	}
	if opt.ProfilePicture != nil {
		updates["profile_picture"] = *opt.ProfilePicture
	}

	if err := s.UsersRepo.Update(ctx, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("username already taken")
		}
		return nil, err
	}
	return s.GetByID(ctx, userID)
}

func (s *UserService) BatchGetByIDs(ctx context.Context, userIDs []uint64) (map[uint64]*models.User, error) {
	users, err := s.UsersRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	result := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}
