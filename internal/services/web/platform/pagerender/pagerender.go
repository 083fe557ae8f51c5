// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
)

// Page describes a page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	Lang       string
	Loc        webtemplates.Localizer
	StatusCode int
	// Body is the document body; HTMX requests receive it without the document.
	Body templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes page as a full document, or as a body fragment for HTMX.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	ctx := webtemplates.WithLocalizer(httpx.RequestContext(r), page.Loc)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		document := webtemplates.Document(webtemplates.PageContext{Title: page.Title, Lang: page.Lang, Loc: page.Loc})
		if err := document.Render(templ.WithChildren(ctx, body), &buf); err != nil {
			return err
		}
	}
	writeBuffered(w, page.StatusCode, buf.Bytes())
	return nil
}

// WriteFragment writes fragment alone, regardless of request type.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, loc webtemplates.Localizer, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(webtemplates.WithLocalizer(httpx.RequestContext(r), loc), &buf); err != nil {
		return err
	}
	writeBuffered(w, statusCode, buf.Bytes())
	return nil
}

func writeBuffered(w http.ResponseWriter, statusCode int, payload []byte) {
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(payload)
}
