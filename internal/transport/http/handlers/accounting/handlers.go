package accountinghandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nippo/internal/domain/auth"
	"nippo/internal/domain/export"
	"nippo/internal/domain/report"
	"nippo/internal/transport/http/api"
	"nippo/internal/transport/http/middleware"
	"nippo/internal/transport/http/shared"
)

// Handler serves the accountant-facing view: every cash figure here is the
// adjusted one. For the accountant role a month only unlocks once an admin
// has adjusted at least one of its days; admins may look at any month.
type Handler struct {
	Reports *report.Store
	Perms   middleware.PermissionStore
}

func NewHandler(reports *report.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Reports: reports, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/accounting", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermAccountingRead, h.Perms))
		r.Get("/{year}/{month}", h.handleMonth)
		r.Get("/{year}/{month}/export.xlsx", h.handleExportXLSX)
		r.Get("/{year}/{month}/export.pdf", h.handleExportPDF)
	})
}

// loadAdjustedMonth fetches the month and applies the role gate, writing
// the failure response itself when access is denied.
func (h *Handler) loadAdjustedMonth(w http.ResponseWriter, r *http.Request) ([]report.DayReport, int, int, bool) {
	year, month, _, err := shared.Date(r, false)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return nil, 0, 0, false
	}

	days, err := h.Reports.GetMonth(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "accounting_failed", "failed to load month", middleware.GetRequestID(r.Context()))
		return nil, 0, 0, false
	}

	if user, ok := middleware.GetUser(r.Context()); ok && user.Role == auth.RoleAccountant {
		if !report.MonthAdjusted(days) {
			api.Fail(w, http.StatusForbidden, "accounting_locked", "month is not released for accounting", middleware.GetRequestID(r.Context()))
			return nil, 0, 0, false
		}
	}

	return report.AdjustedViews(days), year, month, true
}

type monthResponse struct {
	Days    []report.DayReport  `json:"days"`
	Summary report.MonthSummary `json:"summary"`
}

func (h *Handler) handleMonth(w http.ResponseWriter, r *http.Request) {
	days, _, _, ok := h.loadAdjustedMonth(w, r)
	if !ok {
		return
	}

	resp := monthResponse{Days: days}
	if len(days) > 0 {
		resp.Summary = report.Rollup(days[len(days)-1], days)
	}
	api.Success(w, resp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	days, year, month, ok := h.loadAdjustedMonth(w, r)
	if !ok {
		return
	}
	if len(days) == 0 {
		api.Fail(w, http.StatusNotFound, "not_found", "no reports for this month", middleware.GetRequestID(r.Context()))
		return
	}

	f, err := export.MonthlyWorkbook(days)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to build workbook", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.WorkbookFilename(year, month)+`"`)
	if err := f.Write(w); err != nil {
		middleware.LogWriteError(r.Context(), err)
	}
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	days, year, month, ok := h.loadAdjustedMonth(w, r)
	if !ok {
		return
	}
	if len(days) == 0 {
		api.Fail(w, http.StatusNotFound, "not_found", "no reports for this month", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="monthly-report.pdf"`)
	if err := export.MonthlySummaryPDF(year, month, days, w); err != nil {
		middleware.LogWriteError(r.Context(), err)
	}
}
