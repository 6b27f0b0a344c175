// Package server wires the services into the HTTP surface.
package server

import (
	"context"
	"time"

	"autoworld/internal/config"
	"autoworld/internal/domain"
	"autoworld/internal/handler"
	"autoworld/internal/logger"
	"autoworld/internal/middleware"
	"autoworld/internal/service"
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Services groups everything the HTTP layer calls.
type Services struct {
	Session    service.SessionService
	Quiz       service.QuizService
	Builder    service.BuilderService
	Gallery    service.GalleryService
	Sound      service.SoundService
	Video      service.VideoService
	Newsletter service.NewsletterService
	Legal      service.LegalService
}

// QuestionBank returns the configured questions, or the built-in bank when none are configured.
func QuestionBank(cfg config.QuizConfig) domain.QuestionBank {
	if len(cfg.Questions) == 0 {
		return domain.DefaultQuestionBank()
	}
	bank := make(domain.QuestionBank, 0, len(cfg.Questions))
	for _, q := range cfg.Questions {
		bank = append(bank, domain.Question{Prompt: q.Prompt, Answers: q.Answers, Correct: q.Correct})
	}
	return bank
}

// NewServices builds the services over the given cache, subscriber store and scheduler.
func NewServices(cfg *config.Config, c domain.Cache, repo domain.SubscriberRepository, tx domain.TransactionManager, sched service.Scheduler) (*Services, error) {
	quizService, err := service.NewQuizService(QuestionBank(cfg.Quiz), c, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}
	builderService, err := service.NewBuilderService(domain.DefaultPartCatalog(), c, cfg.Session.TTL, sched, cfg.Builder)
	if err != nil {
		return nil, err
	}
	soundService, err := service.NewSoundService(domain.DefaultSoundPresets(), c, cfg.Sound.SampleRate, cfg.Sound.CacheTTL)
	if err != nil {
		return nil, err
	}
	tokenService, err := service.NewTokenService(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Session:    service.NewSessionService(tokenService, quizService, builderService, c, cfg.Session.TTL),
		Quiz:       quizService,
		Builder:    builderService,
		Gallery:    service.NewGalleryService(domain.DefaultGallery()),
		Sound:      soundService,
		Video:      service.NewVideoService(domain.DefaultVideos(), sched, cfg.Video, cfg.Session.TTL),
		Newsletter: service.NewNewsletterService(repo, tx),
		Legal:      service.NewLegalService(domain.DefaultLegalDocuments()),
	}, nil
}

// NewApp creates the fiber app with middleware and routes.
func NewApp(cfg config.ServerConfig, svcs *Services, health domain.Cache) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/healthz", healthCheck(health))
	app.Get("/swagger/*", swagger.HandlerDefault)

	v := validation.NewValidator()
	vm := middleware.NewValidationMiddleware(v)

	sessionHandler := handler.NewSessionHandler(svcs.Session)
	quizHandler := handler.NewQuizHandler(svcs.Quiz, v)
	builderHandler := handler.NewBuilderHandler(svcs.Builder, v)
	galleryHandler := handler.NewGalleryHandler(svcs.Gallery)
	soundHandler := handler.NewSoundHandler(svcs.Sound)
	videoHandler := handler.NewVideoHandler(svcs.Video, v)
	newsletterHandler := handler.NewNewsletterHandler(svcs.Newsletter, v)
	legalHandler := handler.NewLegalHandler(svcs.Legal)

	api := app.Group("/api")
	api.Post("/sessions", sessionHandler.CreateSession)

	requireSession := middleware.RequireSession(svcs.Session)

	quiz := api.Group("/quiz", requireSession)
	quiz.Get("/", quizHandler.GetCurrent)
	quiz.Post("/answer", quizHandler.SubmitAnswer)
	quiz.Post("/advance", quizHandler.Advance)
	quiz.Post("/restart", quizHandler.Restart)

	builder := api.Group("/builder", requireSession)
	builder.Get("/", builderHandler.GetBuilder)
	builder.Post("/drop", builderHandler.Drop)
	builder.Post("/reset", builderHandler.Reset)

	api.Get("/gallery", vm.ValidateSlugQuery("category"), galleryHandler.Filter)
	api.Get("/gallery/cars/:carType", vm.ValidateSlugParam("carType"), galleryHandler.GetCarDetails)

	api.Get("/sounds", soundHandler.ListSounds)
	api.Get("/sounds/:soundType", vm.ValidateSlugParam("soundType"), soundHandler.GetSound)
	api.Get("/sounds/:soundType/wav", vm.ValidateSlugParam("soundType"), soundHandler.GetSoundWAV)

	video := api.Group("/video", requireSession)
	video.Get("/", videoHandler.State)
	video.Post("/open", videoHandler.Open)
	video.Post("/toggle", videoHandler.Toggle)
	video.Post("/close", videoHandler.Close)

	api.Post("/newsletter", newsletterHandler.Subscribe)

	api.Get("/legal", legalHandler.List)
	api.Get("/legal/:doc", vm.ValidateSlugParam("doc"), legalHandler.Get)

	return app
}

func healthCheck(c domain.Cache) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			logger.Get().Warn("Health check failed", zap.Error(err))
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return ctx.JSON(fiber.Map{"status": "ok"})
	}
}
