package templates

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey   = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey  = "web.error.page_title_server_error"
	appErrorMessageNotFoundKey     = "web.error.message_not_found"
	appErrorMessageServerErrKey    = "web.error.message_server_error"
	appErrorBackToDashboardTextKey = "web.error.action_back_to_dashboard"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the error panel shown inside the page shell.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section id="app-error-state" class="app-error"`)
		m.attr("data-status", strconv.Itoa(normalizeAppErrorStatus(statusCode)))
		m.raw("><h1>")
		m.text(AppErrorPageTitle(statusCode, loc))
		m.raw("</h1><p>")
		m.text(appErrorMessage(statusCode, loc))
		m.raw("</p><a")
		m.href("href", routepath.Dashboard)
		m.raw(` class="btn-green">`)
		m.text(T(loc, appErrorBackToDashboardTextKey))
		m.raw("</a></section>")
	})
}
