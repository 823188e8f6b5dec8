package reportshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nippo/internal/domain/auth"
	"nippo/internal/domain/report"
	"nippo/internal/domain/roster"
	"nippo/internal/transport/http/api"
	"nippo/internal/transport/http/middleware"
	"nippo/internal/transport/http/shared"
)

type Handler struct {
	Reports *report.Service
	Roster  *roster.Store
	Perms   middleware.PermissionStore
}

func NewHandler(reports *report.Service, rosterStore *roster.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Reports: reports, Roster: rosterStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/{year}/{month}", h.handleListMonth)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/{year}/{month}/{day}", h.handleGetDay)
		r.With(middleware.RequirePermission(auth.PermReportsWrite, h.Perms)).Put("/{year}/{month}/{day}", h.handleSaveDay)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/{year}/{month}/{day}/summary", h.handleDaySummary)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/{year}/{month}/staff/{name}", h.handleStaffMonth)
		r.With(middleware.RequirePermission(auth.PermAdjustmentsWrite, h.Perms)).Get("/{year}/{month}/adjustments", h.handleListAdjustments)
		r.With(middleware.RequirePermission(auth.PermAdjustmentsWrite, h.Perms)).Post("/{year}/{month}/adjustments", h.handleSaveAdjustments)
	})
}

func (h *Handler) handleListMonth(w http.ResponseWriter, r *http.Request) {
	year, month, _, err := shared.Date(r, false)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	days, err := h.Reports.Store.GetMonth(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to list reports", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, days, middleware.GetRequestID(r.Context()))
}

// handleGetDay returns the saved report, or a fresh one seeded from the
// roster when the day has not been reported yet.
func (h *Handler) handleGetDay(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := shared.Date(r, true)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	d, err := h.Reports.Store.GetDay(r.Context(), year, month, day)
	if errors.Is(err, report.ErrNotFound) {
		members, err := h.Roster.List(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to seed report", middleware.GetRequestID(r.Context()))
			return
		}
		d = report.DayReport{
			Year:          year,
			Month:         month,
			Day:           day,
			DayOfWeek:     report.DayOfWeek(year, month, day),
			Members:       roster.NewDayMembers(members),
			Suppliers:     map[string]float64{},
			Denominations: map[int]int{},
		}
		api.Success(w, d, middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to load report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, d, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveDay(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := shared.Date(r, true)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	var d report.DayReport
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	// The URL is authoritative for the date; the body may not redirect the
	// save to another day.
	d.Year, d.Month, d.Day = year, month, day
	if d.DayOfWeek == "" {
		d.DayOfWeek = report.DayOfWeek(year, month, day)
	}

	problems, err := h.Reports.SaveDay(r.Context(), d)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to save report", middleware.GetRequestID(r.Context()))
		return
	}
	if len(problems) > 0 {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), shared.IssuesFromProblems(problems))
		return
	}

	saved, err := h.Reports.Store.GetDay(r.Context(), year, month, day)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to reload report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, saved, middleware.GetRequestID(r.Context()))
}

type daySummaryResponse struct {
	Day      report.DaySummary    `json:"day"`
	Month    report.MonthSummary  `json:"month"`
	Adjusted *adjustedSummaryView `json:"adjusted,omitempty"`
}

type adjustedSummaryView struct {
	Day   report.DaySummary   `json:"day"`
	Month report.MonthSummary `json:"month"`
}

func (h *Handler) handleDaySummary(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := shared.Date(r, true)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	focal, err := h.Reports.Store.GetDay(r.Context(), year, month, day)
	if errors.Is(err, report.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "day report not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to load report", middleware.GetRequestID(r.Context()))
		return
	}

	monthDays, err := h.Reports.Store.GetMonth(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to load month", middleware.GetRequestID(r.Context()))
		return
	}

	resp := daySummaryResponse{
		Day:   report.AggregateDay(focal),
		Month: report.Rollup(focal, monthDays),
	}

	// Admins additionally see the figures the accountant will see.
	if user, ok := middleware.GetUser(r.Context()); ok {
		if allowed, permErr := h.Perms.HasPermission(r.Context(), user.Role, auth.PermAdjustmentsWrite); permErr == nil && allowed {
			resp.Adjusted = &adjustedSummaryView{
				Day:   report.AggregateDay(report.AdjustedView(focal)),
				Month: report.Rollup(report.AdjustedView(focal), report.AdjustedViews(monthDays)),
			}
		}
	}

	api.Success(w, resp, middleware.GetRequestID(r.Context()))
}

type staffMonthResponse struct {
	Name        string  `json:"name"`
	TotalSalary float64 `json:"totalSalary"`
	TotalHours  float64 `json:"totalHours"`
}

func (h *Handler) handleStaffMonth(w http.ResponseWriter, r *http.Request) {
	year, month, _, err := shared.Date(r, false)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	name := chi.URLParam(r, "name")

	days, err := h.Reports.Store.GetMonth(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to load month", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, staffMonthResponse{
		Name:        name,
		TotalSalary: report.StaffMonthlySalary(name, days),
		TotalHours:  report.StaffMonthlyHours(name, days),
	}, middleware.GetRequestID(r.Context()))
}

type adjustmentEntry struct {
	Day          int     `json:"day"`
	Cash         float64 `json:"cash"`
	AdjustedCash float64 `json:"adjustedCash"`
	Reported     float64 `json:"reported"`
}

type adjustmentsResponse struct {
	Days          []adjustmentEntry `json:"days"`
	MonthlyTotal  float64           `json:"monthlyTotal"`
	MonthAdjusted bool              `json:"monthAdjusted"`
}

func (h *Handler) handleListAdjustments(w http.ResponseWriter, r *http.Request) {
	year, month, _, err := shared.Date(r, false)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	days, err := h.Reports.Store.GetMonth(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to load month", middleware.GetRequestID(r.Context()))
		return
	}

	resp := adjustmentsResponse{
		Days:          make([]adjustmentEntry, 0, len(days)),
		MonthlyTotal:  report.AdjustedMonthlyTotal(days),
		MonthAdjusted: report.MonthAdjusted(days),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, adjustmentEntry{
			Day:          d.Day,
			Cash:         d.Cash,
			AdjustedCash: d.AdjustedCash,
			Reported:     report.EffectiveCash(d),
		})
	}
	api.Success(w, resp, middleware.GetRequestID(r.Context()))
}

type adjustmentPayload struct {
	Day          int     `json:"day"`
	AdjustedCash float64 `json:"adjustedCash"`
}

func (h *Handler) handleSaveAdjustments(w http.ResponseWriter, r *http.Request) {
	year, month, _, err := shared.Date(r, false)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	var payload []adjustmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	for _, entry := range payload {
		err := h.Reports.ApplyAdjustment(r.Context(), year, month, entry.Day, entry.AdjustedCash)
		switch {
		case errors.Is(err, report.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "no report for an adjusted day", middleware.GetRequestID(r.Context()))
			return
		case errors.Is(err, report.ErrAdjustmentStepped), errors.Is(err, report.ErrAdjustmentTooBig):
			api.Fail(w, http.StatusBadRequest, "invalid_adjustment", err.Error(), middleware.GetRequestID(r.Context()))
			return
		case err != nil:
			api.Fail(w, http.StatusInternalServerError, "adjustments_failed", "failed to save adjustments", middleware.GetRequestID(r.Context()))
			return
		}
	}

	h.handleListAdjustments(w, r)
}
