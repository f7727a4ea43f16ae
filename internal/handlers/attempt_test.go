package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"
	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAttemptRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	))

	handler := NewAttemptHandler(services.NewAttemptService(db))

	r := gin.New()
	r.GET("/api/v1/attempts/check/:quizId", func(c *gin.Context) {
		c.Set("user_id", uint(1))
	}, handler.CheckCompletion)
	return r, db
}

func TestCheckCompletionResponseShape(t *testing.T) {
	r, db := newAttemptRouter(t)

	user := &models.User{Username: "player", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(user).Error)
	category := &models.QuizCategory{Name: "General"}
	require.NoError(t, db.Create(category).Error)
	quiz := &models.Quiz{CategoryID: category.ID, Title: "Shapes", TotalQuestions: 1, TimeLimit: 10, CreatedBy: user.ID}
	require.NoError(t, db.Create(quiz).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attempts/check/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, "false", string(body["has_completed"]))
	assert.NotContains(t, body, "last_attempt")

	attempt := &models.QuizAttempt{
		UserID:      user.ID,
		QuizID:      quiz.ID,
		Score:       100,
		IsPerfect:   true,
		StartedAt:   time.Now().Add(-time.Minute),
		CompletedAt: time.Now(),
	}
	require.NoError(t, db.Create(attempt).Error)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/attempts/check/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, "true", string(body["has_completed"]))
	require.Contains(t, body, "last_attempt")

	var last models.QuizAttempt
	require.NoError(t, json.Unmarshal(body["last_attempt"], &last))
	assert.Equal(t, attempt.ID, last.ID)
}
