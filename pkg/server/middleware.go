package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// jsonError writes the error envelope the page's script expects.
func jsonError(c fiber.Ctx, status int, message string) (err error) {
	err = c.Status(status).JSON(fiber.Map{
		"error": message,
	})
	return err
}

// requestLogger tags each request with an X-Request-ID and logs it on
// completion.
func requestLogger() (handler fiber.Handler) {
	handler = func(c fiber.Ctx) (err error) {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err = c.Next()

		logrus.WithFields(logrus.Fields{
			"request_id": rid,
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
		}).Info("http request")

		return err
	}

	return handler
}

// recoverer turns panics and unhandled route errors into the JSON error
// envelope.
func recoverer() (handler fiber.Handler) {
	handler = func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("request handler panicked")
				err = jsonError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}()

		err = c.Next()
		if err == nil {
			return err
		}

		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code > 0 {
			status = fiberErr.Code
		}

		err = jsonError(c, status, err.Error())

		return err
	}

	return handler
}
