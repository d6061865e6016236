// Package service exposes rescale operations over HTTP.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/datakit-labs/tidescale/internal/config"
	"github.com/datakit-labs/tidescale/internal/rescale"
)

type Server struct {
	App *fiber.App
	cfg *config.ServerEnvConfig
}

func NewServer(cfg *config.ServerEnvConfig) *Server {
	app := fiber.New(fiber.Config{
		Prefork:      false,
		ErrorHandler: fiberErrHandler,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    cfg.BodySizeLimit,
	})

	app.Use(recover.New())
	app.Use(compress.New())

	s := &Server{App: app, cfg: cfg}

	app.Get("/health", s.handleHealth)
	app.Post("/v1/rescale", s.handleRescale)
	app.Post("/v1/summary", s.handleSummary)

	return s
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleRescale(c *fiber.Ctx) error {
	var req ValuesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse rescale request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload"})
	}

	scaled := rescale.Rescale01(ToFloats(req.Values))

	log.Debug().Int("values", len(req.Values)).Msg("rescaled sequence")
	return c.JSON(RescaleResponse{Values: FromFloats(scaled)})
}

func (s *Server) handleSummary(c *fiber.Ctx) error {
	var req ValuesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse summary request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload"})
	}

	summary := rescale.Summarize(ToFloats(req.Values))

	log.Debug().Int("values", len(req.Values)).Int("missing", summary.Missing).Msg("summarized sequence")
	return c.JSON(NewSummaryResponse(summary))
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)

	go func() {
		if err := s.App.Listen(addr); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("server listen failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.App.ShutdownWithContext(shutdownCtx)
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("fiber error handler triggered")

	return ctx.Status(code).JSON(ErrorResponse{Error: err.Error()})
}
