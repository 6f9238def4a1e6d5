package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// llmPaths are endpoints whose handlers wait on remote completion calls and
// need a more generous limit than the rest of the API
var llmPaths = []string{"/api/v1/jobs", "/api/v1/technologies"}

func isLLMPath(path string) bool {
	for _, prefix := range llmPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SelectiveTimeoutConfig applies the default timeout to most endpoints and
// the extended timeout to LLM-backed ones
func SelectiveTimeoutConfig(defaultTimeout, llmTimeout time.Duration) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.TimeoutWithConfig(middleware.TimeoutConfig{
			Timeout: defaultTimeout,
			Skipper: func(c echo.Context) bool {
				return isLLMPath(c.Request().URL.Path)
			},
		}),
		middleware.TimeoutWithConfig(middleware.TimeoutConfig{
			Timeout: llmTimeout,
			Skipper: func(c echo.Context) bool {
				return !isLLMPath(c.Request().URL.Path)
			},
		}),
	}
}
