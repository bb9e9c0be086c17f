package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	loginPath          = "/login"
	addNewsPath        = "/add-news"
	newsCountPath      = "/get-news-count"
	newsPath           = "/get-news"
	deleteNewsPath     = "/delete-news/:id"
	updateNewsPath     = "/update-news/:id"
	editNewsPath       = "/edit-news"
	updateSchedulePath = "/updateRaspored"
	schedulePath       = "/getRaspored"

	healthPath = "/health"

	DefaultBodyLimit = "10M"
)

// RegisterRoutes builds the echo instance with middleware and all API routes.
func (h *Handler) RegisterRoutes(bodyLimit string) *echo.Echo {
	if bodyLimit == "" {
		bodyLimit = DefaultBodyLimit
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.loggingMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(bodyLimit))

	h.registerAPIRoutes(e)
	e.GET(healthPath, h.Health)

	return e
}

func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	e.POST(loginPath, h.Login)

	e.POST(addNewsPath, h.AddNews)
	e.GET(newsCountPath, h.NewsCount)
	e.GET(newsPath, h.News)
	e.DELETE(deleteNewsPath, h.DeleteNews)
	e.POST(updateNewsPath, h.UpdateNews)
	e.POST(editNewsPath, h.EditNews)

	e.POST(updateSchedulePath, h.ReplaceSchedule)
	e.GET(schedulePath, h.Schedule)
}

func (h *Handler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				args = append(args, "error", v.Error)
			}

			if v.Status >= http.StatusInternalServerError {
				h.log.Error("HTTP request", args...)
				return nil
			}
			h.log.Info("HTTP request", args...)
			return nil
		},
	})
}
