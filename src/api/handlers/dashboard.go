package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fintrack/src/schemas"
	"fintrack/src/utils"
)

// Composed dashboard views fan out several aggregate queries; they get a
// bounded deadline so one slow query cannot hold the request open.
const dashboardTimeout = 10 * time.Second

func (h *Handler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	summary, err := h.Dashboard.GetSummary(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetQuickStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	stats, err := h.Dashboard.GetQuickStats(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, stats, http.StatusOK)
}

func (h *Handler) GetNetWorthOverview(w http.ResponseWriter, r *http.Request) {
	startDate, err := dateQuery(r, "startDate")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	endDate, err := dateQuery(r, "endDate")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	limit := intQuery(r, "limit", 0)

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	overview, err := h.Dashboard.GetNetWorthOverview(ctx, startDate, endDate, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, overview, http.StatusOK)
}

func (h *Handler) GetCashFlowOverview(w http.ResponseWriter, r *http.Request) {
	year := intQuery(r, "year", utils.Today().Year())

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	overview, err := h.Dashboard.GetCashFlowOverview(ctx, year)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, overview, http.StatusOK)
}

func (h *Handler) GetNetWorthGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.NetWorth.GetGoals(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, goals, http.StatusOK)
}

// SaveNetWorthSnapshot records today's computed net worth, or the date given in
// the body. Saving twice for the same date overwrites the earlier totals; the
// status code tells the caller which happened (201 created, 200 updated).
func (h *Handler) SaveNetWorthSnapshot(w http.ResponseWriter, r *http.Request) {
	var req schemas.SnapshotRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteError(w, utils.BadRequest("invalid JSON body"))
			return
		}
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := utils.ParseDate(*req.Date)
		if err != nil {
			utils.WriteError(w, utils.UnprocessableEntity("date must be a yyyy-mm-dd date"))
			return
		}
		date = &parsed
	}

	result, err := h.NetWorth.SaveSnapshot(r.Context(), date)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	h.respond(w, r, result, status)
}

func (h *Handler) DeleteNetWorthSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.NetWorth.DeleteSnapshot(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("snapshot not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetMonthlyNetWorth(w http.ResponseWriter, r *http.Request) {
	year := intQuery(r, "year", utils.Today().Year())
	monthly, err := h.NetWorth.GetMonthlySummary(r.Context(), year)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, monthly, http.StatusOK)
}
