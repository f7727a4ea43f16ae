package services

import (
	"errors"
	"fmt"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBlogNotFound     = errors.New("blog not found")
	ErrFAQNotFound      = errors.New("FAQ not found")
	ErrAvatarNotFound   = errors.New("avatar not found")
	ErrContactNotFound  = errors.New("contact message not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrAnswersRequired is returned when a submission carries no answers.
	ErrAnswersRequired = errors.New("answers array is required")
	// ErrStartedAtRequired is returned when the start timestamp is missing
	// or unparseable.
	ErrStartedAtRequired = errors.New("started timestamp is required")
)

// TimeExceededError reports a submission that arrived past the quiz time limit.
// Taken is the elapsed time rounded up to whole minutes.
type TimeExceededError struct {
	Limit int
	Taken int
}

func (e *TimeExceededError) Error() string {
	return fmt.Sprintf("time limit exceeded! quiz must be completed within %d minutes, you took %d minutes", e.Limit, e.Taken)
}

// IncompleteError reports a submission whose answer count does not match the
// quiz question count.
type IncompleteError struct {
	Expected int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("please answer all %d questions", e.Expected)
}

// UnknownQuestionError reports an answer referencing a question that does not
// belong to the quiz.
type UnknownQuestionError struct {
	QuestionID uint
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("invalid question_id: %d", e.QuestionID)
}

// InvalidAnswerError reports an answer that does not normalize to A, B, C or D.
type InvalidAnswerError struct {
	Answer string
}

func (e *InvalidAnswerError) Error() string {
	return "answer must be A, B, C, or D"
}
