package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/interview-ai/ai-service/internal/models"
	"github.com/interview-ai/ai-service/internal/services"
)

type EvaluationHandler struct {
	evaluator services.EvaluatorService
}

func NewEvaluationHandler(evaluator services.EvaluatorService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
	}
}

// HandleEvaluate handles POST /ai/evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	if !isJSONContentType(c.Get(fiber.HeaderContentType)) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
			Detail: models.ValidationErrors{models.NotADictError()},
		})
	}

	req, errs := models.ParseEvaluateRequest(c.Body())
	if errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
			Detail: errs,
		})
	}

	result, err := h.evaluator.Evaluate(c.UserContext(), req)
	if err != nil {
		return fmt.Errorf("failed to evaluate answer: %w", err)
	}

	return c.JSON(result)
}

// isJSONContentType reports whether the body should be decoded as JSON.
// A missing header counts as JSON.
func isJSONContentType(ctype string) bool {
	if i := strings.IndexByte(ctype, ';'); i != -1 {
		ctype = ctype[:i]
	}
	ctype = strings.ToLower(strings.TrimSpace(ctype))
	if ctype == "" {
		return true
	}
	return ctype == fiber.MIMEApplicationJSON || strings.HasSuffix(ctype, "+json")
}
