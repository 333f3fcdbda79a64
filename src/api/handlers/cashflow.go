package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack/src/schemas"
	"fintrack/src/utils"
)

func (h *Handler) GetIncome(w http.ResponseWriter, r *http.Request) {
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
	income, err := h.Income.GetAll(r.Context(), startDate, endDate)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, income, http.StatusOK)
}

func (h *Handler) GetIncomeRecord(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	record, err := h.Income.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if record == nil {
		utils.WriteError(w, utils.NotFound("income record not found"))
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var req schemas.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	income, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.Income.Create(r.Context(), income); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.Income.GetByID(r.Context(), income.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	income, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.Income.Update(r.Context(), id, income)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("income record not found"))
		return
	}
	record, err := h.Income.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.Income.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("income record not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
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
	expenses, err := h.Expenses.GetAll(r.Context(), startDate, endDate)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, expenses, http.StatusOK)
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	expense, err := h.Expenses.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if expense == nil {
		utils.WriteError(w, utils.NotFound("expense not found"))
		return
	}
	h.respond(w, r, expense, http.StatusOK)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req schemas.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	expense, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	if err := h.Expenses.Create(r.Context(), expense); err != nil {
		h.handleError(w, r, err)
		return
	}
	created, err := h.Expenses.GetByID(r.Context(), expense.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req schemas.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	expense, err := req.ToModel()
	if err != nil {
		utils.WriteError(w, utils.UnprocessableEntity(err.Error()))
		return
	}
	updated, err := h.Expenses.Update(r.Context(), id, expense)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !updated {
		utils.WriteError(w, utils.NotFound("expense not found"))
		return
	}
	record, err := h.Expenses.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	deleted, err := h.Expenses.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("expense not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCashFlowSummary requires both startDate and endDate; the range is
// inclusive on both ends.
func (h *Handler) GetCashFlowSummary(w http.ResponseWriter, r *http.Request) {
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
	if startDate == nil || endDate == nil {
		utils.WriteError(w, utils.BadRequest("startDate and endDate are required"))
		return
	}

	summary, err := h.CashFlow.GetCashFlowSummary(r.Context(), *startDate, *endDate)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetMonthlyCashFlow(w http.ResponseWriter, r *http.Request) {
	year := intQuery(r, "year", utils.Today().Year())
	monthly, err := h.CashFlow.GetMonthlyCashFlow(r.Context(), year)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, monthly, http.StatusOK)
}

func (h *Handler) GetIncomeByCategory(w http.ResponseWriter, r *http.Request) {
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
	totals, err := h.CashFlow.GetIncomeByCategory(r.Context(), startDate, endDate)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, totals, http.StatusOK)
}

func (h *Handler) GetExpensesByCategory(w http.ResponseWriter, r *http.Request) {
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
	totals, err := h.CashFlow.GetExpensesByCategory(r.Context(), startDate, endDate)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, totals, http.StatusOK)
}

func (h *Handler) GetRecurringTransactions(w http.ResponseWriter, r *http.Request) {
	recurring, err := h.CashFlow.GetRecurringTransactions(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, recurring, http.StatusOK)
}

func (h *Handler) GetRecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 10)
	recent, err := h.CashFlow.GetRecentTransactions(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respond(w, r, recent, http.StatusOK)
}
