package rates

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"privat-rates/internal"
	"privat-rates/internal/models"
)

type ArchiveReader interface {
	GetDailyRates(ctx context.Context, date internal.Date) (internal.DailyRates, error)
}

type Handler struct {
	archive ArchiveReader
	logger  *slog.Logger
}

func New(archive ArchiveReader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{archive: archive, logger: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/rates", h.getRates)
}

func (h *Handler) getRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErr(w, r, http.StatusMethodNotAllowed, models.BizError(models.CodeMethodNotAllowed, "only GET is supported"))
		return
	}

	date, err := internal.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.writeErr(w, r, http.StatusBadRequest, models.BizError(models.CodeBadDate, "date must be DD.MM.YYYY"))
		return
	}

	rates, err := h.archive.GetDailyRates(r.Context(), date)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "read archive failed", "date", date.String(), "err", err)
		h.writeErr(w, r, http.StatusInternalServerError, models.BizError(models.CodeInternal, "internal error"))
		return
	}
	if len(rates) == 0 {
		h.writeErr(w, r, http.StatusNotFound, models.BizError(models.CodeNotArchived, "no rates archived for "+date.String()))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(internal.DailyReport{Date: date, Rates: rates})
	h.logger.DebugContext(r.Context(), "served archived rates", "path", r.URL.Path, "date", date.String())
}

func (h *Handler) writeErr(w http.ResponseWriter, r *http.Request, status int, body *models.BusinessError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)

	h.logger.InfoContext(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "code", body.Code)
}
