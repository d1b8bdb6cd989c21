package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"elearning/internal/auth"
	"elearning/internal/handler"
	"elearning/internal/middleware"
	"elearning/internal/model"
	"elearning/internal/repository"
)

// Register wires routes and middleware. The authentication filter runs on
// every route and never rejects; the per-route guards enforce the policy:
//
//	/auth/*                         public
//	/users/all                      ADMIN
//	/users/get-user-by-id           authenticated
//	/users/delete-user-by-id        ADMIN
//	/users/update-profile           authenticated (self-scoped)
//	/users/get-logged-in-user-data  authenticated
//	/users/save-score               authenticated (self-scoped)
//	/api/quiz-questions/getAllQuizzes  authenticated
//	/api/quiz-questions/* (by id)      ADMIN
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	quizHandler *handler.QuizHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(middleware.Authenticate(jwtService, userRepo))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// User routes
	users := e.Group("/users")
	users.GET("/all", userHandler.ListUsers, middleware.RequireRole(model.RoleAdmin))
	users.GET("/get-user-by-id/:userId", userHandler.GetUserByID, middleware.RequireAuth)
	users.DELETE("/delete-user-by-id/:userId", userHandler.DeleteUser, middleware.RequireRole(model.RoleAdmin))
	users.PUT("/update-profile", userHandler.UpdateProfile, middleware.RequireAuth)
	users.GET("/get-logged-in-user-data", userHandler.GetLoggedInUser, middleware.RequireAuth)
	users.PUT("/save-score", userHandler.SaveScore, middleware.RequireAuth)

	// Quiz question routes
	quiz := e.Group("/api/quiz-questions")
	quiz.GET("/getAllQuizzes", quizHandler.ListQuestions, middleware.RequireAuth)
	quiz.GET("/getQuizById/:id", quizHandler.GetQuestionByID, middleware.RequireRole(model.RoleAdmin))
	quiz.POST("/addQuiz", quizHandler.AddQuestion, middleware.RequireRole(model.RoleAdmin))
	quiz.PUT("/updateQuiz/:id", quizHandler.UpdateQuestion, middleware.RequireRole(model.RoleAdmin))
	quiz.DELETE("/deleteQuiz/:id", quizHandler.DeleteQuestion, middleware.RequireRole(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
