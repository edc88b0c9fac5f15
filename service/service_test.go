package service

import (
	"testing"

	"Recette/config"
	"Recette/dao"
	"Recette/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	users   *UserService
	recipes *RecipeService
	comment *CommentService
	media   *MediaService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
		&models.Like{},
	))

	media := NewMediaService(&config.Storage{Root: t.TempDir()})
	users := &UserService{UsersRepo: dao.NewUsers(db)}
	recipes := &RecipeService{
		RecipeDAO:  dao.NewRecipeDAO(db),
		CommentDAO: dao.NewComment(db),
		LikeDAO:    dao.NewLikeDAO(db),
		Media:      media,
	}
	comment := &CommentService{
		CommentDAO:  dao.NewComment(db),
		RecipeDAO:   dao.NewRecipeDAO(db),
		UserService: users,
	}
	return &testEnv{db: db, users: users, recipes: recipes, comment: comment, media: media}
}
