package contact

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mjkconsultancy/site/internal/contactform"
	apperrors "github.com/mjkconsultancy/site/internal/services/site/platform/errors"
	"github.com/mjkconsultancy/site/internal/services/site/platform/httpx"
	"github.com/mjkconsultancy/site/internal/services/site/platform/pagerender"
	"github.com/mjkconsultancy/site/internal/services/site/platform/weberror"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
	"github.com/mjkconsultancy/site/internal/services/site/templates"
)

func (m *Module) handleContact(w http.ResponseWriter, r *http.Request) {
	m.writeView(w, r, m.views.create(), false)
}

// handleSubmit applies the posted fields and submits them. A view that
// expired or was closed while the page stayed open is replaced by a new one
// and the posted fields are submitted there. The relay call is detached from
// request cancellation so a started submission runs to its outcome even if
// the visitor navigates away.
func (m *Module) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form body", err), m.deps)
		return
	}
	v, ok := m.views.lookup(chi.URLParam(r, "viewID"))
	if !ok {
		v = m.views.create()
	}

	err := m.submit(r, v)
	var incomplete *contactform.IncompleteError
	switch {
	case err == nil,
		errors.Is(err, contactform.ErrSubmitInFlight),
		errors.Is(err, contactform.ErrSubmitUnavailable),
		errors.As(err, &incomplete):
		m.writeView(w, r, v, true)
	case errors.Is(err, contactform.ErrClosed):
		// The view ended under this request. Keep the posted values in a new
		// view instead of sending them a second time.
		fresh := m.views.create()
		_ = applyFields(fresh.controller, r.PostForm)
		m.writeView(w, r, fresh, true)
	default:
		weberror.WriteModuleError(w, r, err, m.deps)
	}
}

// submit applies the posted fields and submits. A view that is not accepting
// edits refuses the first field, so nothing is applied and Submit is skipped.
func (m *Module) submit(r *http.Request, v *view) error {
	if err := applyFields(v.controller, r.PostForm); err != nil {
		return err
	}
	return v.controller.Submit(context.WithoutCancel(httpx.RequestContext(r)))
}

func applyFields(controller *contactform.Controller, form url.Values) error {
	for _, field := range contactform.Fields() {
		values, present := form[string(field)]
		if !present {
			continue
		}
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		if err := controller.Edit(field, value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) handleFields(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form body", err), m.deps)
		return
	}
	field, ok := contactform.ParseField(r.PostForm.Get("field"))
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "unknown contact form field"), m.deps)
		return
	}
	value := r.PostForm.Get(string(field))
	if values, present := r.PostForm["value"]; present && len(values) > 0 {
		value = values[0]
	}
	v, ok := m.views.lookup(chi.URLParam(r, "viewID"))
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "contact view not found"), m.deps)
		return
	}
	switch err := v.controller.Edit(field, value); {
	case err == nil:
		httpx.WriteNoContent(w)
	case errors.Is(err, contactform.ErrSubmitInFlight):
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindConflict, "submission in flight", err), m.deps)
	case errors.Is(err, contactform.ErrSubmitUnavailable):
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindConflict, "form is showing its success panel", err), m.deps)
	case errors.Is(err, contactform.ErrClosed):
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindNotFound, "contact view closed", err), m.deps)
	default:
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "edit refused", err), m.deps)
	}
}

func (m *Module) handleForm(w http.ResponseWriter, r *http.Request) {
	v, ok := m.views.lookup(chi.URLParam(r, "viewID"))
	if !ok || v.controller.Closed() {
		v = m.views.create()
	}
	m.writeView(w, r, v, true)
}

func (m *Module) handleClose(w http.ResponseWriter, r *http.Request) {
	m.views.remove(chi.URLParam(r, "viewID"))
	httpx.WriteNoContent(w)
}

// writeView renders the form panel for HTMX requests that target it, and the
// whole contact page otherwise.
func (m *Module) writeView(w http.ResponseWriter, r *http.Request, v *view, panelOnly bool) {
	registry := m.deps.Content
	form := templates.FormView{
		ViewID:     v.id,
		Form:       v.controller.Snapshot(),
		Copy:       registry.ContactPage(),
		ResetDelay: m.resetDelay,
	}
	fragment := templates.ContactPage(templates.ContactView{
		Copy:    registry.ContactPage(),
		Contact: registry.Contact(),
		Form:    form,
	})
	if panelOnly && httpx.IsHTMXRequest(r) {
		fragment = templates.ContactForm(form)
	}
	err := pagerender.WritePage(w, r, m.deps, pagerender.Page{
		Title:      registry.ContactPage().Heading,
		Fragment:   fragment,
		ActivePath: routepath.Contact,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, m.deps)
	}
}
