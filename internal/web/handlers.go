package web

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/valpere/hireassist/internal"
	"github.com/valpere/hireassist/internal/markdown"
	"github.com/valpere/hireassist/internal/orchestrator"
	"github.com/valpere/hireassist/internal/translator"
	"github.com/valpere/hireassist/internal/validator"
)

// interviewForm mirrors the HTML form; every field stays a string so the page
// can be re-rendered with exactly what the user typed.
type interviewForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	YearsExperience string `form:"years_experience"`
	DesiredPosition string `form:"desired_position"`
	TechStack       string `form:"tech_stack"`
	Language        string `form:"language"`
}

func (f interviewForm) profile() (internal.CandidateProfile, error) {
	years := 0
	if raw := strings.TrimSpace(f.YearsExperience); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return internal.CandidateProfile{}, &validator.ValidationError{
				Field:   "years_experience",
				Message: "⚠️ Years of experience must be a whole number.",
			}
		}
		years = n
	}

	language := f.Language
	if language == "" {
		language = translator.DefaultLanguage
	}

	return internal.CandidateProfile{
		Name:            strings.TrimSpace(f.Name),
		Email:           strings.TrimSpace(f.Email),
		Phone:           strings.TrimSpace(f.Phone),
		YearsExperience: years,
		DesiredPosition: strings.TrimSpace(f.DesiredPosition),
		TechStack:       internal.ParseTechStack(f.TechStack),
		Language:        language,
	}, nil
}

func (s *Server) interviewData(form interviewForm) pageData {
	if form.Language == "" {
		form.Language = translator.DefaultLanguage
	}
	return pageData{
		Title:     "Interview",
		Form:      form,
		Languages: translator.Languages,
		MaxYears:  validator.MaxYearsExperience,
	}
}

func (s *Server) handleHome(c *fiber.Ctx) error {
	return s.render(c, "home", pageData{Title: "Home"})
}

func (s *Server) handleAbout(c *fiber.Ctx) error {
	return s.render(c, "about", pageData{Title: "About Us"})
}

func (s *Server) handleInterview(c *fiber.Ctx) error {
	return s.render(c, "interview", s.interviewData(interviewForm{}))
}

func (s *Server) handleSubmit(c *fiber.Ctx) error {
	var form interviewForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form payload")
	}

	data := s.interviewData(form)

	profile, err := form.profile()
	if err != nil {
		data.Error = err.Error()
		c.Status(fiber.StatusUnprocessableEntity)
		return s.render(c, "interview", data)
	}

	sub := s.runner.Run(c.UserContext(), profile)

	switch {
	case sub.ValidationErr != nil:
		data.Error = sub.DisplayText()
		c.Status(fiber.StatusUnprocessableEntity)
	case sub.State == orchestrator.StateError:
		data.Error = sub.DisplayText()
	default:
		data.Result = &resultView{
			Questions: markdown.ToHTML(sub.DisplayText()),
			Sentiment: sub.Sentiment.Display(),
		}
	}

	return s.render(c, "interview", data)
}

// handleReset discards the rendered result and returns to an empty form.
func (s *Server) handleReset(c *fiber.Ctx) error {
	return c.Redirect("/interview", fiber.StatusSeeOther)
}
