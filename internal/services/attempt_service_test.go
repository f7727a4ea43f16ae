package services

import (
	"testing"
	"time"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuizForPlayStripsCorrectAnswers(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 3)

	svc := NewAttemptService(db)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	play, err := svc.GetQuizForPlay(quiz.ID)
	require.NoError(t, err)

	assert.Equal(t, quiz.ID, play.ID)
	assert.Equal(t, now, play.StartedAt)
	require.Len(t, play.Questions, 3)
	assert.Equal(t, 1, play.Questions[0].QuestionOrder)
	assert.NotEmpty(t, play.Questions[0].OptionA)
}

func TestGetQuizForPlayNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)

	_, err := svc.GetQuizForPlay(42)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSubmitQuizRecordsAttemptAndStats(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 4)

	svc := NewAttemptService(db)
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(started.Add(2 * time.Minute))

	result, err := svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(4, "A"), started)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.IsPerfect)
	assert.Equal(t, 40, result.PointsEarned)
	assert.Equal(t, 40, result.UpdatedStats.TotalPoints)
	assert.Equal(t, 1, result.UpdatedStats.TotalQuizCompleted)
	assert.Equal(t, 1, result.UpdatedStats.TotalPerfectAttempts)

	var attempt models.QuizAttempt
	require.NoError(t, db.First(&attempt, result.AttemptID).Error)
	assert.Equal(t, user.ID, attempt.UserID)
	assert.Equal(t, 100, attempt.Score)
	assert.True(t, attempt.IsPerfect)
}

func TestSubmitQuizStatsAccumulate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 4)

	svc := NewAttemptService(db)
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(started.Add(time.Minute))

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(4, "A"), started)
	require.NoError(t, err)

	// Second run, half wrong: not perfect.
	answers := allAnswers(4, "A")
	answers[2].Answer = "B"
	answers[3].Answer = "B"
	second, err := svc.SubmitQuiz(user.ID, quiz.ID, answers, started)
	require.NoError(t, err)

	assert.Equal(t, 60, second.UpdatedStats.TotalPoints)
	assert.Equal(t, 2, second.UpdatedStats.TotalQuizCompleted)
	assert.Equal(t, 1, second.UpdatedStats.TotalPerfectAttempts)
}

func TestSubmitQuizPlayCountBumpsOnlyOnFirstAttempt(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	other := seedUser(t, db, "other", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 2)

	svc := NewAttemptService(db)
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(started.Add(time.Minute))

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "A"), started)
	require.NoError(t, err)

	svc.now = fixedClock(started.Add(2 * time.Minute))
	_, err = svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "A"), started)
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(other.ID, quiz.ID, allAnswers(2, "B"), started)
	require.NoError(t, err)

	var reloaded models.Quiz
	require.NoError(t, db.First(&reloaded, quiz.ID).Error)
	assert.Equal(t, 2, reloaded.TotalPlayers)
}

func TestSubmitQuizInvalidInputLeavesNoAttempt(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 3)

	svc := NewAttemptService(db)
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(started.Add(time.Minute))

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "A"), started)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)

	var count int64
	require.NoError(t, db.Model(&models.QuizAttempt{}).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Zero(t, reloaded.TotalPoints)
	assert.Zero(t, reloaded.TotalQuizCompleted)
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)

	svc := NewAttemptService(db)
	_, err := svc.SubmitQuiz(user.ID, 42, allAnswers(2, "A"), time.Now())
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestMyHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 2)

	svc := NewAttemptService(db)
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	svc.now = fixedClock(started.Add(time.Minute))
	first, err := svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "B"), started)
	require.NoError(t, err)

	svc.now = fixedClock(started.Add(5 * time.Minute))
	second, err := svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "A"), started)
	require.NoError(t, err)

	history, err := svc.MyHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.AttemptID, history[0].ID)
	assert.Equal(t, first.AttemptID, history[1].ID)
	require.NotNil(t, history[0].Quiz)
	assert.Equal(t, quiz.Title, history[0].Quiz.Title)
}

func TestQuizLeaderboardOrdering(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice", models.RoleUser)
	bob := seedUser(t, db, "bob", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, alice.ID, 2)

	svc := NewAttemptService(db)
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	svc.now = fixedClock(started.Add(time.Minute))
	_, err := svc.SubmitQuiz(bob.ID, quiz.ID, allAnswers(2, "B"), started)
	require.NoError(t, err)

	svc.now = fixedClock(started.Add(2 * time.Minute))
	_, err = svc.SubmitQuiz(alice.ID, quiz.ID, allAnswers(2, "A"), started)
	require.NoError(t, err)

	_, entries, err := svc.QuizLeaderboard(quiz.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, alice.ID, entries[0].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, bob.ID, entries[1].UserID)
}

func TestCheckCompletionNeverBlocks(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player", models.RoleUser)
	category := seedCategory(t, db, "General")
	quiz := seedQuiz(t, db, category.ID, user.ID, 2)

	svc := NewAttemptService(db)

	completed, attempt, err := svc.CheckCompletion(user.ID, quiz.ID)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Nil(t, attempt)

	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(started.Add(time.Minute))
	_, err = svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "A"), started)
	require.NoError(t, err)

	completed, attempt, err = svc.CheckCompletion(user.ID, quiz.ID)
	require.NoError(t, err)
	assert.True(t, completed)
	require.NotNil(t, attempt)

	// A completed quiz can still be submitted again.
	_, err = svc.SubmitQuiz(user.ID, quiz.ID, allAnswers(2, "A"), started)
	assert.NoError(t, err)
}
