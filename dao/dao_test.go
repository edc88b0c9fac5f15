package dao

import (
	"testing"

	"Recette/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库按连接隔离，连接池收到一条避免丢表
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
		&models.Like{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRecipe(t *testing.T, db *gorm.DB, id, userID uint64, title string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Description: "d",
		Ingredients: []byte(`[]`),
		Steps:       []byte(`[]`),
		Images:      []byte(`[]`),
		Tags:        []byte(`[]`),
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
