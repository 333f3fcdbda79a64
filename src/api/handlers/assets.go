package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack/src/schemas"
	"fintrack/src/utils"
)

// GetAssetsSummary returns the per-class asset totals and the grand total.
func (h *Handler) GetAssetsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Valuation.GetTotalAssetValue(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}

// GetAssetBreakdown returns the per-class totals broken out by subcategory.
func (h *Handler) GetAssetBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.Valuation.GetAssetBreakdown(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, breakdown, http.StatusOK)
}

func (h *Handler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.Investments.GetAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, investments, http.StatusOK)
}

func (h *Handler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	investment, err := h.Investments.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if investment == nil {
		utils.WriteError(w, utils.NotFound("investment not found"))
		return
	}
	h.respond(w, r, investment, http.StatusOK)
}

func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req schemas.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	investment, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.Investments.Create(r.Context(), investment); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.Investments.GetByID(r.Context(), investment.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	investment, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.Investments.Update(r.Context(), id, investment)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("investment not found"))
		return
	}
	record, err := h.Investments.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.Investments.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("investment not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetCashAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.CashAccounts.GetAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, accounts, http.StatusOK)
}

func (h *Handler) GetCashAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	account, err := h.CashAccounts.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if account == nil {
		utils.WriteError(w, utils.NotFound("cash account not found"))
		return
	}
	h.respond(w, r, account, http.StatusOK)
}

func (h *Handler) CreateCashAccount(w http.ResponseWriter, r *http.Request) {
	var req schemas.CashAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	account, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.CashAccounts.Create(r.Context(), account); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.CashAccounts.GetByID(r.Context(), account.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateCashAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.CashAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	account, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.CashAccounts.Update(r.Context(), id, account)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("cash account not found"))
		return
	}
	record, err := h.CashAccounts.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeleteCashAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.CashAccounts.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("cash account not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPhysicalAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.PhysicalAssets.GetAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetPhysicalAsset(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	asset, err := h.PhysicalAssets.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if asset == nil {
		utils.WriteError(w, utils.NotFound("physical asset not found"))
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreatePhysicalAsset(w http.ResponseWriter, r *http.Request) {
	var req schemas.PhysicalAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	asset, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.PhysicalAssets.Create(r.Context(), asset); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.PhysicalAssets.GetByID(r.Context(), asset.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdatePhysicalAsset(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.PhysicalAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	asset, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.PhysicalAssets.Update(r.Context(), id, asset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("physical asset not found"))
		return
	}
	record, err := h.PhysicalAssets.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeletePhysicalAsset(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.PhysicalAssets.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("physical asset not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetOwnershipStakes(w http.ResponseWriter, r *http.Request) {
	stakes, err := h.OwnershipStakes.GetAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, stakes, http.StatusOK)
}

func (h *Handler) GetOwnershipStake(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	stake, err := h.OwnershipStakes.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if stake == nil {
		utils.WriteError(w, utils.NotFound("ownership stake not found"))
		return
	}
	h.respond(w, r, stake, http.StatusOK)
}

func (h *Handler) CreateOwnershipStake(w http.ResponseWriter, r *http.Request) {
	var req schemas.OwnershipStakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	stake, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.OwnershipStakes.Create(r.Context(), stake); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.OwnershipStakes.GetByID(r.Context(), stake.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateOwnershipStake(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.OwnershipStakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	stake, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.OwnershipStakes.Update(r.Context(), id, stake)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("ownership stake not found"))
		return
	}
	record, err := h.OwnershipStakes.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeleteOwnershipStake(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.OwnershipStakes.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("ownership stake not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
