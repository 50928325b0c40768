// Package weberror renders error responses for site modules.
package weberror

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mjkconsultancy/site/internal/services/site/module"
	apperrors "github.com/mjkconsultancy/site/internal/services/site/platform/errors"
	"github.com/mjkconsultancy/site/internal/services/site/platform/httpx"
	"github.com/mjkconsultancy/site/internal/services/site/platform/pagerender"
	"github.com/mjkconsultancy/site/internal/services/site/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteErrorPage writes the error page for full-page and HTMX requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	err := pagerender.WritePage(w, r, deps, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode),
		StatusCode: statusCode,
		Fragment:   templates.ErrorPage(statusCode),
	})
	if err != nil && deps.Logger != nil {
		deps.Logger.Error("render error page", zap.Int("status", statusCode), zap.Error(err))
	}
	if err != nil && deps.Content == nil {
		httpx.WriteText(w, statusCode, http.StatusText(statusCode))
	}
}

// WriteModuleError writes a module-safe error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError && deps.Logger != nil {
		deps.Logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode, deps)
		return
	}
	httpx.WriteText(w, statusCode, PublicMessage(err))
}

// NotFoundHandler renders the 404 page.
func NotFoundHandler(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteErrorPage(w, r, http.StatusNotFound, deps)
	})
}
