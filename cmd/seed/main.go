// Seed loads a default admin account and a starter set of quiz questions
// so a fresh deployment is usable immediately. Existing records are left
// alone, so running it repeatedly is harmless.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"elearning/internal/config"
	"elearning/internal/db"
	"elearning/internal/model"
	"elearning/internal/repository"
)

const defaultAdminEmail = "admin@elearning.local"

var starterQuestions = []model.QuizQuestion{
	{
		QuestionText:  "Which keyword declares a constant in Go?",
		AnswerOption1: "let",
		AnswerOption2: "const",
		AnswerOption3: "static",
		AnswerOption4: "final",
		CorrectAnswer: 2,
	},
	{
		QuestionText:  "What does HTTP status 404 mean?",
		AnswerOption1: "Server error",
		AnswerOption2: "Unauthorized",
		AnswerOption3: "Not found",
		AnswerOption4: "Forbidden",
		CorrectAnswer: 3,
	},
	{
		QuestionText:  "Which data structure offers O(1) average lookup by key?",
		AnswerOption1: "Linked list",
		AnswerOption2: "Binary tree",
		AnswerOption3: "Array",
		AnswerOption4: "Hash map",
		CorrectAnswer: 4,
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.QuizQuestion{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	quizRepo := repository.NewQuizQuestionRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedQuestions(ctx, gormDB, quizRepo); err != nil {
		log.Fatalf("seed questions: %v", err)
	}

	log.Println("seed complete")
}

func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	if _, err := repo.FindByEmail(ctx, defaultAdminEmail); err == nil {
		log.Println("admin account already present, skipping")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("SEED_ADMIN_PASSWORD not set, using development default")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        defaultAdminEmail,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("created admin account %s", defaultAdminEmail)
	return nil
}

func seedQuestions(ctx context.Context, gormDB *gorm.DB, repo repository.QuizQuestionRepository) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.QuizQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("%d quiz questions already present, skipping", count)
		return nil
	}

	for i := range starterQuestions {
		if err := repo.Create(ctx, &starterQuestions[i]); err != nil {
			return err
		}
	}
	log.Printf("created %d starter quiz questions", len(starterQuestions))
	return nil
}
