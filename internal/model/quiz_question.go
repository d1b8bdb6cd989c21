package model

import "time"

// QuizQuestion is a single multiple-choice question with four answer
// options. CorrectAnswer is a 1-based index into the options.
type QuizQuestion struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	QuestionText  string    `json:"question_text" gorm:"size:1024;not null"`
	AnswerOption1 string    `json:"answer_option_1" gorm:"size:512;not null"`
	AnswerOption2 string    `json:"answer_option_2" gorm:"size:512;not null"`
	AnswerOption3 string    `json:"answer_option_3" gorm:"size:512;not null"`
	AnswerOption4 string    `json:"answer_option_4" gorm:"size:512;not null"`
	CorrectAnswer int       `json:"correct_answer" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
