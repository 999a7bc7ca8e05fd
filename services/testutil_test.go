package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"stayconnected-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a uniquely named shared in-memory sqlite database so each
// test gets isolated state while gorm's connection pool still sees one DB.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.Answer{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Question {
	t.Helper()

	question := &models.Question{
		Title:       title,
		Description: "description of " + title,
		AuthorID:    author.ID,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func createTestAnswer(t *testing.T, db *gorm.DB, author *models.User, question *models.Question, text string) *models.Answer {
	t.Helper()

	answer := &models.Answer{
		Text:       text,
		AuthorID:   author.ID,
		QuestionID: question.ID,
	}
	require.NoError(t, db.Create(answer).Error)
	return answer
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}
