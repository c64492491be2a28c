package services

import (
	"context"

	"github.com/interview-ai/ai-service/internal/models"
)

type EvaluatorService interface {
	Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluationResult, error)
}

type fixedEvaluatorService struct {
	result models.EvaluationResult
}

// NewFixedEvaluatorService returns an evaluator that scores every answer
// the same way, regardless of its content.
func NewFixedEvaluatorService() EvaluatorService {
	return &fixedEvaluatorService{
		result: models.DefaultEvaluationResult(),
	}
}

// Evaluate implements EvaluatorService.
func (e *fixedEvaluatorService) Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvaluationResult, error) {
	result := e.result
	return &result, nil
}
