package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack/src/schemas"
	"fintrack/src/utils"
)

func (h *Handler) GetLiabilities(w http.ResponseWriter, r *http.Request) {
	liabilities, err := h.Liabilities.GetAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, liabilities, http.StatusOK)
}

func (h *Handler) GetLiability(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	liability, err := h.Liabilities.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if liability == nil {
		utils.WriteError(w, utils.NotFound("liability not found"))
		return
	}
	h.respond(w, r, liability, http.StatusOK)
}

func (h *Handler) CreateLiability(w http.ResponseWriter, r *http.Request) {
	var req schemas.LiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	liability, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.Liabilities.Create(r.Context(), liability); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.Liabilities.GetByID(r.Context(), liability.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateLiability(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.LiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	liability, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.Liabilities.Update(r.Context(), id, liability)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("liability not found"))
		return
	}
	record, err := h.Liabilities.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeleteLiability(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.Liabilities.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("liability not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetLiabilitiesByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.Liability.GetLiabilitiesByCategory(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, totals, http.StatusOK)
}

// GetUpcomingPayments lists open liabilities due within the next ?days days
// (default 30).
func (h *Handler) GetUpcomingPayments(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 30)
	payments, err := h.Liability.GetUpcomingPayments(r.Context(), days)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, payments, http.StatusOK)
}

func (h *Handler) GetPayoffProjections(w http.ResponseWriter, r *http.Request) {
	projections, err := h.Liability.GetPayoffProjections(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, projections, http.StatusOK)
}
