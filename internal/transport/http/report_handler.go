package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "upstreamcli/internal/errors"
	"upstreamcli/internal/exporter"
	"upstreamcli/internal/validation"
	api "upstreamcli/pkg/contracts/api/v1"
	"upstreamcli/pkg/contracts/domain"
)

// ReportHandler serves lote reports.
type ReportHandler struct {
	service      ReportServiceInterface
	validator    *validation.RequestValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		validator:    validation.NewRequestValidator(),
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
	}
}

// Register adds the report routes to r.
func (h *ReportHandler) Register(r chi.Router) {
	r.Get("/lotes", h.ListLotes)
	r.Get("/report", h.GetReport)
	r.Get("/report/{lote}", h.GetReportByLote)
	r.Post("/dataset/reload", h.Reload)
}

// Routes returns the report routes on their own router.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	h.Register(r)
	return r
}

// ListLotes handles GET /api/lotes
func (h *ReportHandler) ListLotes(w http.ResponseWriter, r *http.Request) {
	lotes, err := h.service.ListLotes(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, api.LotesResponse{
		Status: api.StatusSuccess,
		Data:   lotes,
		Count:  len(lotes),
	})
}

// GetReport handles GET /api/report?lote=X&format=json|csv|xlsx
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	q := api.ReportRequest{
		Lote:   r.URL.Query().Get("lote"),
		Format: r.URL.Query().Get("format"),
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	format := domain.ReportFormat(q.Format)
	if format == "" {
		format = domain.ReportFormatJSON
	}
	h.respond(w, r, q.Lote, format)
}

// GetReportByLote handles GET /api/report/{lote}
func (h *ReportHandler) GetReportByLote(w http.ResponseWriter, r *http.Request) {
	lote, err := url.PathUnescape(chi.URLParam(r, "lote"))
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("lote", "invalid lote encoding"))
		return
	}
	if err := h.validator.Struct(api.ReportRequest{Lote: lote}); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.respond(w, r, lote, domain.ReportFormatJSON)
}

func (h *ReportHandler) respond(w http.ResponseWriter, r *http.Request, lote string, format domain.ReportFormat) {
	if format == domain.ReportFormatJSON {
		rep, err := h.service.GetReport(r.Context(), lote)
		if err != nil {
			h.errorHandler.HandleError(w, r, err)
			return
		}
		render.JSON(w, r, api.ReportResponse{Status: api.StatusSuccess, Data: rep})
		return
	}

	// Buffer the file so a failed build still produces a problem response.
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), lote, format, &buf); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.FileName(lote, format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write report",
			slog.String("lote", lote),
			slog.String("error", err.Error()))
	}
}

// Reload handles POST /api/dataset/reload
func (h *ReportHandler) Reload(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Reload(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "dataset reload requested",
		slog.String("source", info.Source),
		slog.Int("records", info.Records))

	render.JSON(w, r, api.ReloadResponse{Status: api.StatusSuccess, Data: info})
}
