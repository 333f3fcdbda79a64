package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/src/controllers"
	"fintrack/src/repositories"
	"fintrack/src/utils"
)

type Handler struct {
	Investments     repositories.InvestmentRepository
	CashAccounts    repositories.CashAccountRepository
	PhysicalAssets  repositories.PhysicalAssetRepository
	OwnershipStakes repositories.OwnershipStakeRepository
	Liabilities     repositories.LiabilityRepository
	Income          repositories.IncomeRepository
	Expenses        repositories.ExpenseRepository

	Valuation controllers.ValuationControllerI
	CashFlow  controllers.CashFlowControllerI
	Liability controllers.LiabilityControllerI
	NetWorth  controllers.NetWorthControllerI
	Dashboard controllers.DashboardControllerI
}

// NewHandler wires the repository and controller graph on top of the store.
func NewHandler(db *sql.DB) *Handler {
	investments := repositories.NewInvestmentRepository(db)
	cashAccounts := repositories.NewCashAccountRepository(db)
	physicalAssets := repositories.NewPhysicalAssetRepository(db)
	ownershipStakes := repositories.NewOwnershipStakeRepository(db)
	liabilities := repositories.NewLiabilityRepository(db)
	income := repositories.NewIncomeRepository(db)
	expenses := repositories.NewExpenseRepository(db)
	snapshots := repositories.NewSnapshotRepository(db)

	valuation := controllers.NewValuationController(investments, cashAccounts, physicalAssets, ownershipStakes, liabilities)
	cashFlow := controllers.NewCashFlowController(income, expenses)
	liability := controllers.NewLiabilityController(liabilities)
	netWorth := controllers.NewNetWorthController(valuation, snapshots)
	dashboard := controllers.NewDashboardController(valuation, cashFlow, liability, netWorth)

	return &Handler{
		Investments:     investments,
		CashAccounts:    cashAccounts,
		PhysicalAssets:  physicalAssets,
		OwnershipStakes: ownershipStakes,
		Liabilities:     liabilities,
		Income:          income,
		Expenses:        expenses,
		Valuation:       valuation,
		CashFlow:        cashFlow,
		Liability:       liability,
		NetWorth:        netWorth,
		Dashboard:       dashboard,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// handleError maps controller errors onto the HTTP taxonomy: invalid ranges
// are the caller's fault, everything else is a store failure.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := utils.LoggerFromContext(r.Context())

	if errors.Is(err, controllers.ErrInvalidRange) {
		utils.WriteError(w, utils.BadRequest(err.Error()))
		return
	}
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		utils.WriteError(w, httpErr)
		return
	}

	logger.Errorf("request %s %s failed: %v", r.Method, r.URL.Path, err)
	utils.WriteError(w, utils.InternalServerError(err.Error()))
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, utils.BadRequest("id must be a positive integer")
	}
	return id, nil
}

func dateQuery(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	date, err := utils.ParseDate(value)
	if err != nil {
		return nil, utils.UnprocessableEntity(name + " must be a yyyy-mm-dd date")
	}
	return &date, nil
}

func intQuery(r *http.Request, name string, fallback int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
	})
}
