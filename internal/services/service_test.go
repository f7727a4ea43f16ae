package services

import (
	"testing"
	"time"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Avatar{},
		&models.User{},
		&models.QuizCategory{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizAttempt{},
		&models.BlogCategory{},
		&models.Blog{},
		&models.FAQ{},
		&models.ContactMessage{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.QuizCategory {
	t.Helper()

	category := &models.QuizCategory{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// seedQuiz creates a quiz with n questions whose correct answer is always A.
func seedQuiz(t *testing.T, db *gorm.DB, categoryID, createdBy uint, n int) *models.Quiz {
	t.Helper()

	quiz := &models.Quiz{
		CategoryID:     categoryID,
		Title:          "Seeded Quiz",
		TotalQuestions: n,
		TimeLimit:      10,
		CreatedBy:      createdBy,
	}
	require.NoError(t, db.Create(quiz).Error)

	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&models.QuizQuestion{
			QuizID:        quiz.ID,
			Question:      "Question",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: "A",
			QuestionOrder: i,
		}).Error)
	}
	return quiz
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
