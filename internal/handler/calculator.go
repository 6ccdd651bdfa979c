package handler

import (
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

type savingsRequest struct {
	Principal      float64 `json:"principal"`
	MonthlyDeposit float64 `json:"monthlyDeposit"`
	AnnualRate     float64 `json:"annualRate"`
	Months         int     `json:"months"`
}

func (h *CalculatorHandler) Savings(w http.ResponseWriter, r *http.Request) {
	var req savingsRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	projection, err := h.calculatorService.Savings(req.Principal, req.MonthlyDeposit, req.AnnualRate, req.Months)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, projection)
}

type loanRequest struct {
	Amount     float64 `json:"amount"`
	AnnualRate float64 `json:"annualRate"`
	Months     int     `json:"months"`
}

func (h *CalculatorHandler) Loan(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	simulation, err := h.calculatorService.Loan(req.Amount, req.AnnualRate, req.Months)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, simulation)
}
