package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"elearning/internal/dto"
	"elearning/internal/model"
	"elearning/internal/service"
)

// QuizHandler handles quiz question management endpoints.
type QuizHandler struct {
	svc service.QuizService
}

// NewQuizHandler creates a handler layer.
func NewQuizHandler(svc service.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

// QuizQuestionRequest carries a question to create or replace. All five
// text/selection fields are mandatory.
type QuizQuestionRequest struct {
	QuestionText  string `json:"questionText" validate:"required"`
	AnswerOption1 string `json:"answerOption1" validate:"required"`
	AnswerOption2 string `json:"answerOption2" validate:"required"`
	AnswerOption3 string `json:"answerOption3" validate:"required"`
	AnswerOption4 string `json:"answerOption4" validate:"required"`
	CorrectAnswer int    `json:"correctAnswer" validate:"required,gte=1,lte=4"`
}

func (r *QuizQuestionRequest) toModel() *model.QuizQuestion {
	return &model.QuizQuestion{
		QuestionText:  r.QuestionText,
		AnswerOption1: r.AnswerOption1,
		AnswerOption2: r.AnswerOption2,
		AnswerOption3: r.AnswerOption3,
		AnswerOption4: r.AnswerOption4,
		CorrectAnswer: r.CorrectAnswer,
	}
}

// ListQuestions godoc
// @Summary List all quiz questions
// @Tags quiz-questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /api/quiz-questions/getAllQuizzes [get]
func (h *QuizHandler) ListQuestions(c echo.Context) error {
	questions, err := h.svc.ListQuestions(c.Request().Context())
	if err != nil {
		return fail(c, err, "fetching quiz questions")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode:       http.StatusOK,
		Message:          "All quiz questions retrieved successfully",
		QuizQuestionList: dto.FromQuizQuestions(questions),
	})
}

// GetQuestionByID godoc
// @Summary Get a quiz question by id
// @Tags quiz-questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/quiz-questions/getQuizById/{id} [get]
func (h *QuizHandler) GetQuestionByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	question, err := h.svc.GetQuestionByID(c.Request().Context(), uint(id))
	if err != nil {
		return fail(c, err, "fetching quiz question")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode:   http.StatusOK,
		Message:      "Quiz question retrieved successfully",
		QuizQuestion: dto.FromQuizQuestion(question),
	})
}

// AddQuestion godoc
// @Summary Add a quiz question
// @Tags quiz-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuizQuestionRequest true "Question payload"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Router /api/quiz-questions/addQuiz [post]
func (h *QuizHandler) AddQuestion(c echo.Context) error {
	var req QuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	question, err := h.svc.AddQuestion(c.Request().Context(), req.toModel())
	if err != nil {
		return fail(c, err, "adding quiz question")
	}
	return c.JSON(http.StatusCreated, dto.Response{
		StatusCode:   http.StatusCreated,
		Message:      "Quiz question added successfully",
		QuizQuestion: dto.FromQuizQuestion(question),
	})
}

// UpdateQuestion godoc
// @Summary Update a quiz question by id
// @Tags quiz-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body QuizQuestionRequest true "Question payload"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/quiz-questions/updateQuiz/{id} [put]
func (h *QuizHandler) UpdateQuestion(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	var req QuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	question, err := h.svc.UpdateQuestion(c.Request().Context(), uint(id), req.toModel())
	if err != nil {
		return fail(c, err, "updating quiz question")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode:   http.StatusOK,
		Message:      "Quiz question updated successfully",
		QuizQuestion: dto.FromQuizQuestion(question),
	})
}

// DeleteQuestion godoc
// @Summary Delete a quiz question by id
// @Tags quiz-questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/quiz-questions/deleteQuiz/{id} [delete]
func (h *QuizHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	if err := h.svc.DeleteQuestion(c.Request().Context(), uint(id)); err != nil {
		return fail(c, err, "deleting quiz question")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "Quiz question deleted successfully",
	})
}
