package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// QuestionInput is one question as supplied by an admin on create, update or
// import. The correct answer is case-insensitive.
type QuestionInput struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

func validateQuestions(questions []QuestionInput) error {
	if len(questions) == 0 {
		return errors.New("questions array is required and must not be empty")
	}
	for i, q := range questions {
		if q.Question == "" || q.OptionA == "" || q.OptionB == "" || q.OptionC == "" || q.OptionD == "" || q.CorrectAnswer == "" {
			return fmt.Errorf("question %d: all fields are required (question, option_a, option_b, option_c, option_d, correct_answer)", i+1)
		}
		if normalizeChoice(q.CorrectAnswer) == "" {
			return fmt.Errorf("question %d: correct_answer must be A, B, C, or D", i+1)
		}
	}
	return nil
}

func buildQuestions(quizID uint, questions []QuestionInput) []models.QuizQuestion {
	rows := make([]models.QuizQuestion, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, models.QuizQuestion{
			QuizID:        quizID,
			Question:      strings.TrimSpace(q.Question),
			OptionA:       strings.TrimSpace(q.OptionA),
			OptionB:       strings.TrimSpace(q.OptionB),
			OptionC:       strings.TrimSpace(q.OptionC),
			OptionD:       strings.TrimSpace(q.OptionD),
			CorrectAnswer: normalizeChoice(q.CorrectAnswer),
			QuestionOrder: i + 1,
		})
	}
	return rows
}

func (s *QuizService) GetAll() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Preload("Category").
		Preload("Creator").
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizService) GetByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Preload("Category").
		Preload("Creator").
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

func (s *QuizService) GetByCategory(categoryID uint) ([]models.Quiz, error) {
	var category models.QuizCategory
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	var quizzes []models.Quiz
	err := s.db.Where("category_id = ?", categoryID).
		Preload("Category").
		Preload("Creator").
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

type CreateQuizInput struct {
	CategoryID  uint
	Title       string
	TimeLimit   int
	Questions   []QuestionInput
	ImageCover  string
	StoragePath string
	CreatedBy   uint
}

func (s *QuizService) Create(input CreateQuizInput) (*models.Quiz, error) {
	if input.CategoryID == 0 || strings.TrimSpace(input.Title) == "" {
		return nil, errors.New("category ID and title are required")
	}
	if err := validateQuestions(input.Questions); err != nil {
		return nil, err
	}

	var category models.QuizCategory
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	timeLimit := input.TimeLimit
	if timeLimit <= 0 {
		timeLimit = 10
	}

	quiz := models.Quiz{
		CategoryID:     input.CategoryID,
		Title:          strings.TrimSpace(input.Title),
		TotalQuestions: len(input.Questions),
		TimeLimit:      timeLimit,
		ImageCover:     input.ImageCover,
		StoragePath:    input.StoragePath,
		CreatedBy:      input.CreatedBy,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	if err := s.db.Create(buildQuestions(quiz.ID, input.Questions)).Error; err != nil {
		return nil, err
	}

	return s.GetByID(quiz.ID)
}

type UpdateQuizInput struct {
	CategoryID  *uint
	Title       *string
	TimeLimit   *int
	Questions   []QuestionInput
	ImageCover  *string
	StoragePath *string
}

// Update applies a partial update; when questions are supplied they replace
// the existing set wholesale and total_questions is recomputed.
func (s *QuizService) Update(quizID uint, input UpdateQuizInput) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	if input.CategoryID != nil {
		var category models.QuizCategory
		if err := s.db.First(&category, *input.CategoryID).Error; err != nil {
			return nil, ErrCategoryNotFound
		}
		quiz.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		quiz.Title = strings.TrimSpace(*input.Title)
	}
	if input.TimeLimit != nil && *input.TimeLimit > 0 {
		quiz.TimeLimit = *input.TimeLimit
	}
	if input.Questions != nil {
		if err := validateQuestions(input.Questions); err != nil {
			return nil, err
		}
		quiz.TotalQuestions = len(input.Questions)
	}
	if input.ImageCover != nil {
		quiz.ImageCover = *input.ImageCover
	}
	if input.StoragePath != nil {
		quiz.StoragePath = *input.StoragePath
	}

	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}

	if input.Questions != nil {
		if err := s.db.Where("quiz_id = ?", quizID).Delete(&models.QuizQuestion{}).Error; err != nil {
			return nil, err
		}
		if err := s.db.Create(buildQuestions(quizID, input.Questions)).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(quizID)
}

// Delete removes the quiz and its questions, returning the storage path of
// the cover image so the caller can clean up the object.
func (s *QuizService) Delete(quizID uint) (string, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return "", ErrQuizNotFound
	}

	if err := s.db.Where("quiz_id = ?", quizID).Delete(&models.QuizQuestion{}).Error; err != nil {
		return "", err
	}
	if err := s.db.Delete(&quiz).Error; err != nil {
		return "", err
	}
	return quiz.StoragePath, nil
}

// ExportQuestions returns the quiz's questions in the same shape accepted by
// create and import.
func (s *QuizService) ExportQuestions(quizID uint) (*models.Quiz, []QuestionInput, error) {
	quiz, err := s.GetByID(quizID)
	if err != nil {
		return nil, nil, err
	}

	out := make([]QuestionInput, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		out = append(out, QuestionInput{
			Question:      q.Question,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return quiz, out, nil
}

// ImportQuestions replaces the quiz's question set from an uploaded file.
func (s *QuizService) ImportQuestions(quizID uint, questions []QuestionInput) (int, error) {
	if err := validateQuestions(questions); err != nil {
		return 0, err
	}

	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return 0, ErrQuizNotFound
	}

	if err := s.db.Where("quiz_id = ?", quizID).Delete(&models.QuizQuestion{}).Error; err != nil {
		return 0, err
	}
	if err := s.db.Create(buildQuestions(quizID, questions)).Error; err != nil {
		return 0, err
	}

	quiz.TotalQuestions = len(questions)
	if err := s.db.Save(&quiz).Error; err != nil {
		return 0, err
	}
	return len(questions), nil
}
