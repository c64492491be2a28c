package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/interview-ai/ai-service/internal/config"
	"github.com/interview-ai/ai-service/internal/handlers"
	"github.com/interview-ai/ai-service/internal/services"
)

// New builds the HTTP application: middleware, the root greeting and the
// /ai feature group.
func New(cfg *config.Config, evaluator services.EvaluatorService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Server.AppName,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: cfg.Server.Env == "production",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	rootHandler := handlers.NewRootHandler()
	evaluateHandler := handlers.NewEvaluationHandler(evaluator)

	app.Get("/", rootHandler.HandleRoot)
	app.Get("/health", rootHandler.HandleHealth)

	ai := app.Group("/ai")
	ai.Post("/evaluate", evaluateHandler.HandleEvaluate)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
