package services

import (
	"testing"
	"time"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalQuiz(n int) *models.Quiz {
	quiz := &models.Quiz{
		ID:             1,
		Title:          "Grading",
		TotalQuestions: n,
		TimeLimit:      10,
	}
	for i := 1; i <= n; i++ {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			ID:            uint(i),
			QuizID:        1,
			Question:      "Question",
			CorrectAnswer: "A",
			QuestionOrder: i,
		})
	}
	return quiz
}

func allAnswers(n int, choice string) []SubmittedAnswer {
	answers := make([]SubmittedAnswer, 0, n)
	for i := 1; i <= n; i++ {
		answers = append(answers, SubmittedAnswer{QuestionID: uint(i), Answer: choice})
	}
	return answers
}

func TestEvaluateAttemptPerfect(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(3 * time.Minute)

	ev, err := EvaluateAttempt(evalQuiz(4), allAnswers(4, "A"), started, now)
	require.NoError(t, err)

	assert.Equal(t, 100, ev.Score)
	assert.Equal(t, 4, ev.TotalCorrect)
	assert.True(t, ev.IsPerfect)
	assert.Equal(t, 40, ev.PointsEarned)
	assert.Equal(t, 3, ev.TimeTaken)
	assert.Len(t, ev.Results, 4)
}

func TestEvaluateAttemptPartialScore(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(time.Minute)

	answers := []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "A"},
		{QuestionID: 3, Answer: "B"},
		{QuestionID: 4, Answer: "C"},
	}

	ev, err := EvaluateAttempt(evalQuiz(4), answers, started, now)
	require.NoError(t, err)

	assert.Equal(t, 50, ev.Score)
	assert.Equal(t, 2, ev.TotalCorrect)
	assert.False(t, ev.IsPerfect)
	assert.Equal(t, 20, ev.PointsEarned)

	assert.True(t, ev.Results[0].IsCorrect)
	assert.False(t, ev.Results[2].IsCorrect)
	assert.Equal(t, "B", ev.Results[2].YourAnswer)
	assert.Equal(t, "A", ev.Results[2].CorrectAnswer)
}

func TestEvaluateAttemptScoreRoundsHalfUp(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(time.Minute)

	// 1 of 8 correct: 12.5% rounds to 13.
	answers := allAnswers(8, "B")
	answers[0].Answer = "A"

	ev, err := EvaluateAttempt(evalQuiz(8), answers, started, now)
	require.NoError(t, err)
	assert.Equal(t, 13, ev.Score)
}

func TestEvaluateAttemptLowercaseAnswers(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(time.Minute)

	ev, err := EvaluateAttempt(evalQuiz(2), allAnswers(2, "a"), started, now)
	require.NoError(t, err)

	assert.Equal(t, 2, ev.TotalCorrect)
	assert.Equal(t, "A", ev.Results[0].YourAnswer)
}

func TestEvaluateAttemptEmptyAnswers(t *testing.T) {
	now := time.Now()

	_, err := EvaluateAttempt(evalQuiz(2), nil, now.Add(-time.Minute), now)
	assert.ErrorIs(t, err, ErrAnswersRequired)
}

func TestEvaluateAttemptMissingStartedAt(t *testing.T) {
	_, err := EvaluateAttempt(evalQuiz(2), allAnswers(2, "A"), time.Time{}, time.Now())
	assert.ErrorIs(t, err, ErrStartedAtRequired)
}

func TestEvaluateAttemptTimeExceeded(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(10*time.Minute + 30*time.Second)

	_, err := EvaluateAttempt(evalQuiz(2), allAnswers(2, "A"), started, now)

	var timeErr *TimeExceededError
	require.ErrorAs(t, err, &timeErr)
	assert.Equal(t, 10, timeErr.Limit)
	assert.Equal(t, 11, timeErr.Taken)
}

func TestEvaluateAttemptExactlyAtLimit(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(10 * time.Minute)

	ev, err := EvaluateAttempt(evalQuiz(2), allAnswers(2, "A"), started, now)
	require.NoError(t, err)
	assert.Equal(t, 10, ev.TimeTaken)
}

func TestEvaluateAttemptIncomplete(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(time.Minute)

	_, err := EvaluateAttempt(evalQuiz(4), allAnswers(3, "A"), started, now)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 4, incomplete.Expected)
}

func TestEvaluateAttemptUnknownQuestion(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(time.Minute)

	answers := allAnswers(2, "A")
	answers[1].QuestionID = 999

	_, err := EvaluateAttempt(evalQuiz(2), answers, started, now)

	var unknown *UnknownQuestionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint(999), unknown.QuestionID)
}

func TestEvaluateAttemptInvalidLetter(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(time.Minute)

	answers := allAnswers(2, "A")
	answers[1].Answer = "E"

	_, err := EvaluateAttempt(evalQuiz(2), answers, started, now)

	var invalid *InvalidAnswerError
	assert.ErrorAs(t, err, &invalid)
}
