package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"phonedrop/internal/model"
	"phonedrop/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; all pipeline logic lives in the service.
func RegisterRoutes(app *fiber.App, svc service.UploadService, reg prometheus.Gatherer) {
	app.Get("/status", Status())
	app.Post("/upload", Upload(svc))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
}

// Status responds to the unauthenticated health probe.
func Status() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"online": true})
	}
}

// Upload accepts multipart/form-data with "file" parts and/or "url"/"urls"
// fields, JSON bodies with url/urls, and url-encoded forms. It responds with
// the stored filenames plus per-item failures; partial success is a 200.
func Upload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := extractItems(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "PARSE_ERROR", "malformed request body")
		}

		res, err := svc.Process(c.UserContext(), items)
		if err != nil {
			if errors.Is(err, service.ErrNoItems) {
				return writeError(c, fiber.StatusBadRequest, "NO_ITEMS", "no file parts or urls in request")
			}
			// Client gone or other request-scoped abort; there is nobody
			// left to answer.
			return err
		}
		return c.JSON(res)
	}
}

// extractItems picks the extraction strategy by content type.
func extractItems(c *fiber.Ctx) ([]model.UploadItem, error) {
	ct := c.Get(fiber.HeaderContentType)
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		return service.ExtractMultipart(form)
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		return service.ExtractJSON(c.Body())
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		values, err := url.ParseQuery(string(c.Body()))
		if err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
		return service.ExtractForm(values), nil
	default:
		return nil, fmt.Errorf("unsupported content type %q", ct)
	}
}
