package dto

import "elearning/internal/model"

// Response is the uniform envelope returned by every endpoint. StatusCode
// mirrors the HTTP status. At most one of the payload fields is set per
// response; absent fields are dropped from the JSON entirely.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`

	// Auth-related fields
	Token          string `json:"token,omitempty"`
	Role           string `json:"role,omitempty"`
	ExpirationTime string `json:"expirationTime,omitempty"`

	// Payload variants
	User             *User          `json:"user,omitempty"`
	UserList         []User         `json:"userList,omitempty"`
	QuizQuestion     *QuizQuestion  `json:"quizQuestion,omitempty"`
	QuizQuestionList []QuizQuestion `json:"quizQuestionList,omitempty"`
}

// User is the wire representation of a user account. The password hash
// never crosses this boundary.
type User struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	UserScore int    `json:"userScore"`
}

// QuizQuestion is the wire representation of a quiz question.
type QuizQuestion struct {
	ID            uint   `json:"id"`
	QuestionText  string `json:"questionText"`
	AnswerOption1 string `json:"answerOption1"`
	AnswerOption2 string `json:"answerOption2"`
	AnswerOption3 string `json:"answerOption3"`
	AnswerOption4 string `json:"answerOption4"`
	CorrectAnswer int    `json:"correctAnswer"`
}

// FromUser maps a stored user to its external view.
func FromUser(u *model.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		UserScore: u.UserScore,
	}
}

// FromUsers maps a list of stored users.
func FromUsers(users []model.User) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, *FromUser(&users[i]))
	}
	return out
}

// FromQuizQuestion maps a stored question to its external view.
func FromQuizQuestion(q *model.QuizQuestion) *QuizQuestion {
	if q == nil {
		return nil
	}
	return &QuizQuestion{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		AnswerOption1: q.AnswerOption1,
		AnswerOption2: q.AnswerOption2,
		AnswerOption3: q.AnswerOption3,
		AnswerOption4: q.AnswerOption4,
		CorrectAnswer: q.CorrectAnswer,
	}
}

// FromQuizQuestions maps a list of stored questions.
func FromQuizQuestions(questions []model.QuizQuestion) []QuizQuestion {
	out := make([]QuizQuestion, 0, len(questions))
	for i := range questions {
		out = append(out, *FromQuizQuestion(&questions[i]))
	}
	return out
}
