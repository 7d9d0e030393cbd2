package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/view"
	"github.com/jsamuelsen11/factorial-service/internal/domain"
	"github.com/jsamuelsen11/factorial-service/internal/platform/logging"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

// PageRenderer renders the calculator page.
type PageRenderer interface {
	Index(w io.Writer, p view.Page) error
}

// CalculatorHandler serves the calculator web page. Failures are rendered
// into the page with status 200; only rendering errors produce a problem
// response.
type CalculatorHandler struct {
	service  ports.CalculatorService
	renderer PageRenderer
}

// NewCalculatorHandler creates a CalculatorHandler.
func NewCalculatorHandler(service ports.CalculatorService, renderer PageRenderer) *CalculatorHandler {
	return &CalculatorHandler{service: service, renderer: renderer}
}

// Index handles GET /.
func (h *CalculatorHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Page{})
}

// Calculate handles POST /.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	form, err := dto.DecodeCalculateForm(w, r)
	if err != nil {
		h.render(w, r, view.InvalidNumberPage(""))
		return
	}

	res, err := h.service.Calculate(r.Context(), form.Number)
	if err != nil {
		h.render(w, r, errorPage(form.Number, err))
		return
	}

	h.render(w, r, view.ResultPage(form.Number, res))
}

// errorPage picks the message for a failed calculation. Local parse errors
// get the fixed prompt; everything from the API is shown as "Error: ...".
func errorPage(raw string, err error) view.Page {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Code == domain.CodeInvalidNumber && verr.Source == "form" {
		return view.InvalidNumberPage(raw)
	}

	return view.ErrorPage(raw, err.Error())
}

func (h *CalculatorHandler) render(w http.ResponseWriter, r *http.Request, p view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Index(w, p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, err)
	}
}
