package service

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must not be negative")
	ErrInvalidLoan      = errors.New("loan amount must be greater than zero")
	ErrInvalidRate      = errors.New("interest rate must not be negative")
	ErrInvalidTerm      = errors.New("term must be at least one month")
)

// SavingsProjection is the outcome of compounding a starting balance
// plus fixed monthly deposits over a term.
type SavingsProjection struct {
	Principal        float64 `json:"principal"`
	MonthlyDeposit   float64 `json:"monthlyDeposit"`
	AnnualRate       float64 `json:"annualRate"`
	Months           int     `json:"months"`
	FutureValue      float64 `json:"futureValue"`
	TotalContributed float64 `json:"totalContributed"`
	InterestEarned   float64 `json:"interestEarned"`
}

// LoanSimulation is the outcome of a fixed-rate amortized loan.
type LoanSimulation struct {
	Amount         float64 `json:"amount"`
	AnnualRate     float64 `json:"annualRate"`
	Months         int     `json:"months"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
}

// CalculatorService implements the app's savings and credit
// simulators. Pure arithmetic, no persistence.
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// Savings compounds monthly: each month the balance earns one month of
// interest, then the deposit is added. Rates are annual percentages.
func (s *CalculatorService) Savings(principal, monthlyDeposit, annualRate float64, months int) (*SavingsProjection, error) {
	if principal < 0 || monthlyDeposit < 0 {
		return nil, ErrInvalidPrincipal
	}
	if annualRate < 0 {
		return nil, ErrInvalidRate
	}
	if months < 1 {
		return nil, ErrInvalidTerm
	}

	monthlyRate := annualRate / 100 / 12
	balance := principal
	for i := 0; i < months; i++ {
		balance = balance*(1+monthlyRate) + monthlyDeposit
	}

	contributed := principal + monthlyDeposit*float64(months)

	return &SavingsProjection{
		Principal:        principal,
		MonthlyDeposit:   monthlyDeposit,
		AnnualRate:       annualRate,
		Months:           months,
		FutureValue:      round2(balance),
		TotalContributed: round2(contributed),
		InterestEarned:   round2(balance - contributed),
	}, nil
}

// Loan computes the fixed monthly payment with the standard annuity
// formula. A zero rate degenerates to straight division.
func (s *CalculatorService) Loan(amount, annualRate float64, months int) (*LoanSimulation, error) {
	if amount <= 0 {
		return nil, ErrInvalidLoan
	}
	if annualRate < 0 {
		return nil, ErrInvalidRate
	}
	if months < 1 {
		return nil, ErrInvalidTerm
	}

	monthlyRate := annualRate / 100 / 12

	var payment float64
	if monthlyRate == 0 {
		payment = amount / float64(months)
	} else {
		payment = amount * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months)))
	}

	total := payment * float64(months)

	return &LoanSimulation{
		Amount:         amount,
		AnnualRate:     annualRate,
		Months:         months,
		MonthlyPayment: round2(payment),
		TotalPaid:      round2(total),
		TotalInterest:  round2(total - amount),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
