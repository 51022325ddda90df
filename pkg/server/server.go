// Package server hosts the tailoring page and the generation endpoint.
package server

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/tailorcv/tailorcv/pkg/tailor"
)

// Server wires the tailoring engine into an HTTP app.
type Server struct {
	app    *fiber.App
	engine *tailor.Engine
}

// New builds the HTTP app with middleware and routes registered.
func New(engine *tailor.Engine) (s *Server) {
	app := fiber.New(fiber.Config{})

	app.Use(requestLogger())
	app.Use(recoverer())

	s = &Server{
		app:    app,
		engine: engine,
	}

	app.Get("/", s.handleIndex)
	app.Post("/generate", s.handleGenerate)
	app.Get("/health", s.handleHealth)

	return s
}

// Listen serves HTTP on the given port until the server is shut down.
func (s *Server) Listen(port string) (err error) {
	addr := port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	err = s.app.Listen(addr)

	return err
}

// Shutdown stops the server, waiting for in-flight requests to finish.
func (s *Server) Shutdown(ctx context.Context) (err error) {
	err = s.app.ShutdownWithContext(ctx)
	return err
}

// handleIndex serves the tailoring page.
func (s *Server) handleIndex(c fiber.Ctx) (err error) {
	c.Type("html")
	err = c.SendString(tailoringPage)
	return err
}

// handleGenerate runs the tailoring pipeline for a posted job description.
func (s *Server) handleGenerate(c fiber.Ctx) (err error) {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		err = jsonError(c, fiber.StatusBadRequest, "Job description is required")
		return err
	}

	result, runErr := s.engine.Run(c.Context(), jobDescription)
	if runErr != nil {
		logrus.WithField("reason", runErr.Error()).Error("CV generation failed")
		err = jsonError(c, fiber.StatusInternalServerError, runErr.Error())
		return err
	}

	err = c.JSON(result)

	return err
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c fiber.Ctx) (err error) {
	err = c.SendString("OK")
	return err
}
