package models

type QuizQuestion struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	QuizID        uint   `gorm:"not null;index" json:"quiz_id"`
	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"size:500;not null" json:"option_a"`
	OptionB       string `gorm:"size:500;not null" json:"option_b"`
	OptionC       string `gorm:"size:500;not null" json:"option_c"`
	OptionD       string `gorm:"size:500;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"`
	QuestionOrder int    `gorm:"not null" json:"question_order"`
}
