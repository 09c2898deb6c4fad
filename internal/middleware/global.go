package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/meepleworks/reviews-api/internal/errs"
	"github.com/meepleworks/reviews-api/internal/server"
	"github.com/meepleworks/reviews-api/internal/sqlerr"
)

// GlobalMiddlewares groups the middleware applied to every route.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{server: s}
}

// CORS allows browser clients from the configured origins.
func (g *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: g.server.Config.Server.CORSAllowedOrigins,
	})
}

// Recover converts handler panics into 500 responses.
func (g *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}

// Secure adds the standard security headers.
func (g *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return echomw.Secure()
}

// RequestLogger emits one structured log line per request, leveled by
// status class. When a handler returned an error the final status is
// derived from the error shape, since the error handler writes the
// response after this hook runs.
func (g *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,

		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				var apiErr *errs.APIError
				var echoErr *echo.HTTPError
				if errors.As(v.Error, &apiErr) {
					statusCode = apiErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Msg("API")

			return nil
		},
	})
}

// ErrorHandler is the terminal error funnel: every error returned from
// a handler or middleware ends here and becomes a `{"msg": ...}`
// response.
//
// Resolution is an ordered chain, first match wins:
//  1. *errs.APIError — explicit status and message from the app.
//  2. echo's own errors — a route miss becomes 404 "Route not found",
//     a bind failure 400 "Bad request".
//  3. driver errors via sqlerr — invalid input syntax, dangling
//     references, no-rows.
//  4. anything else — logged and answered 500 "Internal Server Error".
func ErrorHandler(err error, c echo.Context) {
	originalErr := err

	var apiErr *errs.APIError
	if !errors.As(err, &apiErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound:
				err = errs.NewNotFound("Route not found")
			case http.StatusBadRequest:
				err = errs.NewBadRequest("Bad request")
			default:
				err = errs.New(echoErr.Code, http.StatusText(echoErr.Code))
			}
		} else {
			err = sqlerr.HandleError(err)
		}
		errors.As(err, &apiErr)
	}

	if apiErr.Status >= http.StatusInternalServerError {
		GetLogger(c).Error().Err(originalErr).Int("status", apiErr.Status).Msg("unhandled error")
	}

	if !c.Response().Committed {
		_ = c.JSON(apiErr.Status, apiErr)
	}
}
