// Package web serves the Home, Interview and About pages.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/valpere/hireassist/internal"
	"github.com/valpere/hireassist/internal/orchestrator"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "interview", "about"}

// Runner processes one submission. *orchestrator.Orchestrator satisfies it.
type Runner interface {
	Run(ctx context.Context, profile internal.CandidateProfile) *orchestrator.Submission
}

type Server struct {
	app    *fiber.App
	runner Runner
	pages  map[string]*template.Template
	log    zerolog.Logger
}

func NewServer(runner Runner, log zerolog.Logger) (*Server, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = t
	}

	s := &Server{runner: runner, pages: pages, log: log}

	s.app = fiber.New(fiber.Config{
		AppName:               "AI Hiring Assistant",
		ReadTimeout:           30 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(requestLogger(log))

	s.app.Get("/", s.handleHome)
	s.app.Get("/interview", s.handleInterview)
	s.app.Post("/interview", s.handleSubmit)
	s.app.Post("/interview/reset", s.handleReset)
	s.app.Get("/about", s.handleAbout)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	return s, nil
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("server starting")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

type pageData struct {
	Title     string
	Page      string
	Form      interviewForm
	Languages []string
	MaxYears  int
	Error     string
	Result    *resultView
}

type resultView struct {
	Questions template.HTML
	Sentiment string
}

func (s *Server) render(c *fiber.Ctx, page string, data pageData) error {
	data.Page = page
	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).SendString(err.Error())
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
