package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"elearning/internal/cache"
	apperrors "elearning/internal/errors"
	"elearning/internal/model"
	"elearning/internal/repository"
)

const (
	quizListCacheKey = "quiz:all"
	quizListCacheTTL = 5 * time.Minute
)

// QuizService exposes quiz question management operations.
type QuizService interface {
	ListQuestions(ctx context.Context) ([]model.QuizQuestion, error)
	GetQuestionByID(ctx context.Context, id uint) (*model.QuizQuestion, error)
	AddQuestion(ctx context.Context, question *model.QuizQuestion) (*model.QuizQuestion, error)
	UpdateQuestion(ctx context.Context, id uint, question *model.QuizQuestion) (*model.QuizQuestion, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type quizService struct {
	repo  repository.QuizQuestionRepository
	cache *cache.Client
}

// NewQuizService builds a QuizService with repository and cache.
func NewQuizService(repo repository.QuizQuestionRepository, cache *cache.Client) QuizService {
	return &quizService{repo: repo, cache: cache}
}

func (s *quizService) ListQuestions(ctx context.Context) ([]model.QuizQuestion, error) {
	if data, _ := s.cache.Get(ctx, quizListCacheKey); data != nil {
		var cached []model.QuizQuestion
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	questions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(questions); err == nil {
		_ = s.cache.Set(ctx, quizListCacheKey, payload, quizListCacheTTL)
	}
	return questions, nil
}

func (s *quizService) GetQuestionByID(ctx context.Context, id uint) (*model.QuizQuestion, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *quizService) AddQuestion(ctx context.Context, question *model.QuizQuestion) (*model.QuizQuestion, error) {
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, quizListCacheKey)
	return question, nil
}

func (s *quizService) UpdateQuestion(ctx context.Context, id uint, question *model.QuizQuestion) (*model.QuizQuestion, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}

	existing.QuestionText = question.QuestionText
	existing.AnswerOption1 = question.AnswerOption1
	existing.AnswerOption2 = question.AnswerOption2
	existing.AnswerOption3 = question.AnswerOption3
	existing.AnswerOption4 = question.AnswerOption4
	existing.CorrectAnswer = question.CorrectAnswer

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, quizListCacheKey)
	return existing, nil
}

func (s *quizService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrQuestionNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, quizListCacheKey)
	return nil
}
