package services

import (
	"testing"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions(n int) []QuestionInput {
	questions := make([]QuestionInput, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, QuestionInput{
			Question:      "What is the answer?",
			OptionA:       "This one",
			OptionB:       "Not this",
			OptionC:       "Nope",
			OptionD:       "Never",
			CorrectAnswer: "a",
		})
	}
	return questions
}

func TestCreateQuiz(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")

	svc := NewQuizService(db)
	quiz, err := svc.Create(CreateQuizInput{
		CategoryID: category.ID,
		Title:      "  Go Basics  ",
		Questions:  sampleQuestions(3),
		CreatedBy:  admin.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", quiz.Title)
	assert.Equal(t, 3, quiz.TotalQuestions)
	assert.Equal(t, 10, quiz.TimeLimit)
	require.Len(t, quiz.Questions, 3)
	assert.Equal(t, "A", quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, quiz.Questions[0].QuestionOrder)
	assert.Equal(t, 3, quiz.Questions[2].QuestionOrder)
}

func TestCreateQuizCustomTimeLimit(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")
	svc := NewQuizService(db)

	quiz, err := svc.Create(CreateQuizInput{
		CategoryID: category.ID,
		Title:      "Long form",
		TimeLimit:  30,
		Questions:  sampleQuestions(2),
		CreatedBy:  admin.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, quiz.TimeLimit)
}

func TestCreateQuizValidation(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")
	svc := NewQuizService(db)

	_, err := svc.Create(CreateQuizInput{Title: "No category", Questions: sampleQuestions(1), CreatedBy: admin.ID})
	assert.Error(t, err)

	_, err = svc.Create(CreateQuizInput{CategoryID: category.ID, Title: "Empty", CreatedBy: admin.ID})
	assert.EqualError(t, err, "questions array is required and must not be empty")

	bad := sampleQuestions(1)
	bad[0].CorrectAnswer = "X"
	_, err = svc.Create(CreateQuizInput{CategoryID: category.ID, Title: "Bad answer", Questions: bad, CreatedBy: admin.ID})
	assert.EqualError(t, err, "question 1: correct_answer must be A, B, C, or D")

	incomplete := sampleQuestions(2)
	incomplete[1].OptionC = ""
	_, err = svc.Create(CreateQuizInput{CategoryID: category.ID, Title: "Missing option", Questions: incomplete, CreatedBy: admin.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 2")

	_, err = svc.Create(CreateQuizInput{CategoryID: 999, Title: "Ghost category", Questions: sampleQuestions(1), CreatedBy: admin.ID})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateQuizReplacesQuestions(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")
	svc := NewQuizService(db)

	quiz, err := svc.Create(CreateQuizInput{
		CategoryID: category.ID,
		Title:      "Go Basics",
		Questions:  sampleQuestions(3),
		CreatedBy:  admin.ID,
	})
	require.NoError(t, err)

	newTitle := "Go Advanced"
	newLimit := 20
	updated, err := svc.Update(quiz.ID, UpdateQuizInput{
		Title:     &newTitle,
		TimeLimit: &newLimit,
		Questions: sampleQuestions(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Go Advanced", updated.Title)
	assert.Equal(t, 20, updated.TimeLimit)
	assert.Equal(t, 5, updated.TotalQuestions)
	assert.Len(t, updated.Questions, 5)

	var count int64
	require.NoError(t, db.Model(&models.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestUpdateQuizPartial(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")
	svc := NewQuizService(db)

	quiz, err := svc.Create(CreateQuizInput{
		CategoryID: category.ID,
		Title:      "Go Basics",
		Questions:  sampleQuestions(3),
		CreatedBy:  admin.ID,
	})
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(quiz.ID, UpdateQuizInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 3, updated.TotalQuestions)
	assert.Len(t, updated.Questions, 3)
}

func TestDeleteQuizRemovesQuestions(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")
	svc := NewQuizService(db)

	quiz, err := svc.Create(CreateQuizInput{
		CategoryID:  category.ID,
		Title:       "Doomed",
		Questions:   sampleQuestions(2),
		CreatedBy:   admin.ID,
		StoragePath: "covers/doomed.png",
	})
	require.NoError(t, err)

	path, err := svc.Delete(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "covers/doomed.png", path)

	_, err = svc.GetByID(quiz.ID)
	assert.ErrorIs(t, err, ErrQuizNotFound)

	var count int64
	require.NoError(t, db.Model(&models.QuizQuestion{}).Where("quiz_id = ?", quiz.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "General")
	svc := NewQuizService(db)

	quiz, err := svc.Create(CreateQuizInput{
		CategoryID: category.ID,
		Title:      "Exportable",
		Questions:  sampleQuestions(3),
		CreatedBy:  admin.ID,
	})
	require.NoError(t, err)

	_, exported, err := svc.ExportQuestions(quiz.ID)
	require.NoError(t, err)
	require.Len(t, exported, 3)
	assert.Equal(t, "A", exported[0].CorrectAnswer)

	count, err := svc.ImportQuestions(quiz.ID, exported[:2])
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	reloaded, err := svc.GetByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.TotalQuestions)
	assert.Len(t, reloaded.Questions, 2)
}
