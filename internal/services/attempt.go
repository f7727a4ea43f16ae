package services

import (
	"errors"
	"math"
	"time"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

// SubmittedAnswer is one (question, choice) pair from the player. The choice
// is case-insensitive and must normalize to one of A, B, C, D.
type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// AnswerResult is the graded outcome for a single question, in submission order.
type AnswerResult struct {
	QuestionID    uint   `json:"question_id"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// UserStats mirrors the cumulative counters kept on the user row.
type UserStats struct {
	TotalPoints          int `json:"total_points"`
	TotalQuizCompleted   int `json:"total_quiz_completed"`
	TotalPerfectAttempts int `json:"total_perfect_attempts"`
}

// Evaluation is the pure result of grading one submission; nothing here has
// been persisted yet.
type Evaluation struct {
	Score          int
	TotalCorrect   int
	TotalQuestions int
	IsPerfect      bool
	PointsEarned   int
	TimeTaken      int
	TimeLimit      int
	Results        []AnswerResult
}

// pointsPerCorrect is a fixed weight, independent of the percentage score.
const pointsPerCorrect = 10

// EvaluateAttempt validates and grades a submission against a quiz whose
// questions are already loaded. Checks run in a fixed order and the first
// failure wins; a failed submission produces no partial results.
func EvaluateAttempt(quiz *models.Quiz, answers []SubmittedAnswer, startedAt, now time.Time) (*Evaluation, error) {
	if len(answers) == 0 {
		return nil, ErrAnswersRequired
	}
	if startedAt.IsZero() {
		return nil, ErrStartedAtRequired
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	elapsedMinutes := now.Sub(startedAt).Minutes()
	timeTaken := int(math.Ceil(elapsedMinutes))
	if elapsedMinutes > float64(quiz.TimeLimit) {
		return nil, &TimeExceededError{Limit: quiz.TimeLimit, Taken: timeTaken}
	}

	if len(answers) != quiz.TotalQuestions {
		return nil, &IncompleteError{Expected: quiz.TotalQuestions}
	}

	questionsByID := make(map[uint]*models.QuizQuestion, len(quiz.Questions))
	for i := range quiz.Questions {
		questionsByID[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	totalCorrect := 0
	results := make([]AnswerResult, 0, len(answers))
	for _, ans := range answers {
		question, ok := questionsByID[ans.QuestionID]
		if !ok {
			return nil, &UnknownQuestionError{QuestionID: ans.QuestionID}
		}

		choice := normalizeChoice(ans.Answer)
		if choice == "" {
			return nil, &InvalidAnswerError{Answer: ans.Answer}
		}

		isCorrect := choice == question.CorrectAnswer
		if isCorrect {
			totalCorrect++
		}

		results = append(results, AnswerResult{
			QuestionID:    question.ID,
			Question:      question.Question,
			YourAnswer:    choice,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
		})
	}

	score := int(math.Round(float64(totalCorrect) / float64(quiz.TotalQuestions) * 100))

	return &Evaluation{
		Score:          score,
		TotalCorrect:   totalCorrect,
		TotalQuestions: quiz.TotalQuestions,
		IsPerfect:      totalCorrect == quiz.TotalQuestions,
		PointsEarned:   totalCorrect * pointsPerCorrect,
		TimeTaken:      timeTaken,
		TimeLimit:      quiz.TimeLimit,
		Results:        results,
	}, nil
}

func normalizeChoice(answer string) string {
	switch answer {
	case "A", "a":
		return "A"
	case "B", "b":
		return "B"
	case "C", "c":
		return "C"
	case "D", "d":
		return "D"
	}
	return ""
}

type AttemptService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db, now: time.Now}
}

// PlayQuestion is a question with the correct answer stripped out.
type PlayQuestion struct {
	ID            uint   `json:"id"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	QuestionOrder int    `json:"question_order"`
}

type PlayQuiz struct {
	ID             uint                 `json:"id"`
	Title          string               `json:"title"`
	TotalQuestions int                  `json:"total_questions"`
	TimeLimit      int                  `json:"time_limit"`
	ImageCover     string               `json:"image_cover,omitempty"`
	Category       *models.QuizCategory `json:"category,omitempty"`
	Questions      []PlayQuestion       `json:"questions"`
	StartedAt      time.Time            `json:"started_at"`
}

// GetQuizForPlay returns the quiz as presented to a player, with a
// server-issued start timestamp the client must echo back on submission.
func (s *AttemptService) GetQuizForPlay(quizID uint) (*PlayQuiz, error) {
	quiz, err := s.quizWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	play := &PlayQuiz{
		ID:             quiz.ID,
		Title:          quiz.Title,
		TotalQuestions: quiz.TotalQuestions,
		TimeLimit:      quiz.TimeLimit,
		ImageCover:     quiz.ImageCover,
		Category:       quiz.Category,
		Questions:      make([]PlayQuestion, 0, len(quiz.Questions)),
		StartedAt:      s.now(),
	}
	for _, q := range quiz.Questions {
		play.Questions = append(play.Questions, PlayQuestion{
			ID:            q.ID,
			Question:      q.Question,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			QuestionOrder: q.QuestionOrder,
		})
	}
	return play, nil
}

// SubmitResult is the success payload of a graded submission.
type SubmitResult struct {
	AttemptID      uint           `json:"attempt_id"`
	Score          int            `json:"score"`
	TotalCorrect   int            `json:"total_correct"`
	TotalQuestions int            `json:"total_questions"`
	IsPerfect      bool           `json:"is_perfect"`
	PointsEarned   int            `json:"points_earned"`
	TimeTaken      int            `json:"time_taken"`
	TimeLimit      int            `json:"time_limit"`
	Results        []AnswerResult `json:"results"`
	UpdatedStats   UserStats      `json:"updated_stats"`
}

// SubmitQuiz grades a submission and, only when every check passes, records
// the attempt, bumps the user's cumulative counters and, for the user's first
// attempt at this quiz, the quiz play count. The three writes are not wrapped
// in one transaction; an attempt row can outlive a failed stats update.
func (s *AttemptService) SubmitQuiz(userID, quizID uint, answers []SubmittedAnswer, startedAt time.Time) (*SubmitResult, error) {
	if len(answers) == 0 {
		return nil, ErrAnswersRequired
	}
	if startedAt.IsZero() {
		return nil, ErrStartedAtRequired
	}

	quiz, err := s.quizWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	ev, err := EvaluateAttempt(quiz, answers, startedAt, now)
	if err != nil {
		return nil, err
	}

	attempt := models.QuizAttempt{
		UserID:       userID,
		QuizID:       quizID,
		Score:        ev.Score,
		TotalCorrect: ev.TotalCorrect,
		IsPerfect:    ev.IsPerfect,
		StartedAt:    startedAt,
		CompletedAt:  now,
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"total_points":         gorm.Expr("total_points + ?", ev.PointsEarned),
		"total_quiz_completed": gorm.Expr("total_quiz_completed + 1"),
	}
	if ev.IsPerfect {
		updates["total_perfect_attempts"] = gorm.Expr("total_perfect_attempts + 1")
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).UpdateColumns(updates).Error; err != nil {
		return nil, err
	}

	// First attempt for this user+quiz pair bumps the quiz play count.
	// Two concurrent submissions can each see themselves as first; the
	// increment itself is atomic but the check is not.
	var earliest models.QuizAttempt
	err = s.db.Select("id").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("completed_at ASC, id ASC").
		First(&earliest).Error
	if err == nil && earliest.ID == attempt.ID {
		if err := s.db.Model(&models.Quiz{}).Where("id = ?", quizID).
			UpdateColumn("total_players", gorm.Expr("total_players + 1")).Error; err != nil {
			return nil, err
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	return &SubmitResult{
		AttemptID:      attempt.ID,
		Score:          ev.Score,
		TotalCorrect:   ev.TotalCorrect,
		TotalQuestions: ev.TotalQuestions,
		IsPerfect:      ev.IsPerfect,
		PointsEarned:   ev.PointsEarned,
		TimeTaken:      ev.TimeTaken,
		TimeLimit:      ev.TimeLimit,
		Results:        ev.Results,
		UpdatedStats: UserStats{
			TotalPoints:          user.TotalPoints,
			TotalQuizCompleted:   user.TotalQuizCompleted,
			TotalPerfectAttempts: user.TotalPerfectAttempts,
		},
	}, nil
}

func (s *AttemptService) MyHistory(userID uint, limit int) ([]models.QuizAttempt, error) {
	if limit <= 0 {
		limit = 10
	}

	var attempts []models.QuizAttempt
	err := s.db.Where("user_id = ?", userID).
		Preload("Quiz").
		Preload("Quiz.Category").
		Order("completed_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// RankedAttempt is a leaderboard row with its 1-based position attached.
type RankedAttempt struct {
	models.QuizAttempt
	Rank int `json:"rank"`
}

// QuizLeaderboard lists the best attempts for a quiz, highest score first,
// earlier completion breaking ties.
func (s *AttemptService) QuizLeaderboard(quizID uint, limit int) (*models.Quiz, []RankedAttempt, error) {
	if limit <= 0 {
		limit = 10
	}

	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, nil, ErrQuizNotFound
	}

	var attempts []models.QuizAttempt
	err := s.db.Where("quiz_id = ?", quizID).
		Preload("User").
		Preload("User.Avatar").
		Order("score DESC, completed_at ASC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, nil, err
	}

	ranked := make([]RankedAttempt, 0, len(attempts))
	for i, a := range attempts {
		ranked = append(ranked, RankedAttempt{QuizAttempt: a, Rank: i + 1})
	}
	return &quiz, ranked, nil
}

// CheckCompletion reports whether the user has already completed the quiz,
// with their latest attempt if so. It never blocks resubmission.
func (s *AttemptService) CheckCompletion(userID, quizID uint) (bool, *models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	err := s.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("completed_at DESC").
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return true, &attempt, nil
}

func (s *AttemptService) quizWithQuestions(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Preload("Category").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
