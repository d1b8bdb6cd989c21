package repository

import (
	"context"

	"gorm.io/gorm"

	"elearning/internal/model"
)

// QuizQuestionRepository defines persistence operations for quiz questions.
type QuizQuestionRepository interface {
	Create(ctx context.Context, question *model.QuizQuestion) error
	Update(ctx context.Context, question *model.QuizQuestion) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.QuizQuestion, error)
	List(ctx context.Context) ([]model.QuizQuestion, error)
}

type quizQuestionRepository struct {
	db *gorm.DB
}

// NewQuizQuestionRepository builds a GORM-backed repository.
func NewQuizQuestionRepository(db *gorm.DB) QuizQuestionRepository {
	return &quizQuestionRepository{db: db}
}

func (r *quizQuestionRepository) Create(ctx context.Context, question *model.QuizQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *quizQuestionRepository) Update(ctx context.Context, question *model.QuizQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *quizQuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.QuizQuestion{}, id).Error
}

func (r *quizQuestionRepository) FindByID(ctx context.Context, id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *quizQuestionRepository) List(ctx context.Context) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.WithContext(ctx).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
