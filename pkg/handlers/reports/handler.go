package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/alertiq/sales-atlas/pkg/adapters"
	"github.com/alertiq/sales-atlas/pkg/export"
	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/services/report"
)

type Handler struct {
	reports report.Service
}

func NewHandler(reports report.Service) *Handler {
	return &Handler{reports: reports}
}

// parseDate reads the date query parameter, defaulting to today.
func parseDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return domain.Day(time.Now()), nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("date must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

func parseFormat(r *http.Request) domain.ReportFormat {
	raw := r.URL.Query().Get("format")
	if raw == "" {
		return domain.FormatText
	}
	return domain.ReportFormat(raw)
}

func reportContentType(format domain.ReportFormat) string {
	switch format {
	case domain.FormatHTML:
		return "text/html; charset=utf-8"
	case domain.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// GetDailyReport renders the daily report in the requested format.
func (h *Handler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	date, err := parseDate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	format := parseFormat(r)
	if _, err := export.For(format); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := h.reports.DailyReport(ctx, date)
	if err != nil {
		logger.Error().Err(err).Str("date", date.Format("2006-01-02")).Msg("failed to build daily report")
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}

	rendered, err := export.RenderString(rep, format)
	if err != nil {
		logger.Error().Err(err).Str("format", string(format)).Msg("failed to render daily report")
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", reportContentType(format))
	if _, err := w.Write([]byte(rendered)); err != nil {
		logger.Error().Err(err).Msg("failed to write report response")
	}
}

// GetDailyMetrics returns the raw metrics bundle as JSON.
func (h *Handler) GetDailyMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	date, err := parseDate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := h.reports.DailyReport(ctx, date)
	if err != nil {
		logger.Error().Err(err).Str("date", date.Format("2006-01-02")).Msg("failed to build daily report")
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDailyReportDomainToApi(rep)); err != nil {
		logger.Error().Err(err).Msg("failed to encode daily metrics")
	}
}
