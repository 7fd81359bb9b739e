package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credifacil/backend/internal/model"
	"github.com/credifacil/backend/pkg/currency"
	"github.com/credifacil/backend/pkg/loan"
)

var (
	// ErrNegativeAmount rejects simulations for negative requested amounts.
	ErrNegativeAmount = errors.New("requested amount must not be negative")
	// ErrInvalidTerm rejects terms outside the selectable term set.
	ErrInvalidTerm = errors.New("term is not a selectable term")
)

// CreditRepositoryInterface defines the contract for catalog data access.
// Implementations must be safe for concurrent use.
type CreditRepositoryInterface interface {
	List(ctx context.Context) ([]model.CreditProduct, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CreditProduct, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, product *model.CreditProduct) error
}

// CatalogService exposes the credit product catalog and payment simulations.
type CatalogService struct {
	repo CreditRepositoryInterface
}

// NewCatalogService creates a new CatalogService with the given repository.
func NewCatalogService(repo CreditRepositoryInterface) *CatalogService {
	return &CatalogService{repo: repo}
}

// SimulationResult is a payment estimate for a product, amount and term.
type SimulationResult struct {
	CreditID                uuid.UUID       `json:"creditId"`
	CreditName              string          `json:"creditName"`
	RequestedAmount         decimal.Decimal `json:"requestedAmount"`
	TermMonths              int             `json:"termMonths"`
	InterestRate            decimal.Decimal `json:"interestRate"`
	MonthlyPayment          decimal.Decimal `json:"monthlyPayment"`
	MonthlyPaymentFormatted string          `json:"monthlyPaymentFormatted"`
}

// List returns every product in the catalog.
func (s *CatalogService) List(ctx context.Context) ([]model.CreditProduct, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing credits: %w", err)
	}
	return products, nil
}

// Get retrieves a product by its ID.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*model.CreditProduct, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting credit %s: %w", id, err)
	}
	return product, nil
}

// Simulate computes the estimated monthly installment for a product. The
// estimate is recomputed from its inputs on every call; nothing is cached.
// The term must come from the selectable term set, which also guarantees the
// estimator's positive-term precondition.
func (s *CatalogService) Simulate(ctx context.Context, creditID uuid.UUID, amount decimal.Decimal, termMonths int) (*SimulationResult, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !loan.IsAllowedTerm(termMonths) {
		return nil, ErrInvalidTerm
	}

	product, err := s.repo.GetByID(ctx, creditID)
	if err != nil {
		return nil, fmt.Errorf("getting credit %s: %w", creditID, err)
	}

	payment := loan.EstimateMonthlyPayment(amount, termMonths, product.InterestRate)

	return &SimulationResult{
		CreditID:                product.ID,
		CreditName:              product.Name,
		RequestedAmount:         amount,
		TermMonths:              termMonths,
		InterestRate:            product.InterestRate,
		MonthlyPayment:          payment,
		MonthlyPaymentFormatted: currency.FormatCOP(payment),
	}, nil
}

// SeedDefaults loads the six launch products into an empty catalog. A catalog
// that already has products is left untouched.
func (s *CatalogService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting credits: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	products := DefaultCredits()
	for i := range products {
		if err := s.repo.Create(ctx, &products[i]); err != nil {
			return i, fmt.Errorf("seeding credit %q: %w", products[i].Name, err)
		}
	}
	return len(products), nil
}

const defaultRequirements = "Mayor de 18 años, ingresos mínimos de $1.200.000"

// DefaultCredits returns the launch catalog definitions.
func DefaultCredits() []model.CreditProduct {
	return []model.CreditProduct{
		{
			Name:         "Crédito de libre inversión",
			Description:  "Dinero más rápido",
			MinAmount:    decimal.NewFromInt(1000000),
			MaxAmount:    decimal.NewFromInt(30000000),
			InterestRate: decimal.NewFromFloat(1.8),
			MaxTerm:      60,
			Requirements: defaultRequirements,
			Icon:         "💰",
		},
		{
			Name:         "Crédito de Vehículo",
			Description:  "Dinero más rápido",
			MinAmount:    decimal.NewFromInt(10000000),
			MaxAmount:    decimal.NewFromInt(80000000),
			InterestRate: decimal.NewFromFloat(1.5),
			MaxTerm:      84,
			Requirements: defaultRequirements,
			Icon:         "🚗",
		},
		{
			Name:         "Crédito Vivienda",
			Description:  "Dinero más rápido",
			MinAmount:    decimal.NewFromInt(20000000),
			MaxAmount:    decimal.NewFromInt(5000000000),
			InterestRate: decimal.NewFromFloat(0.9),
			MaxTerm:      240,
			Requirements: defaultRequirements,
			Icon:         "🏠",
		},
		{
			Name:         "Crédito Educativo",
			Description:  "Dinero más rápido",
			MinAmount:    decimal.NewFromInt(2000000),
			MaxAmount:    decimal.NewFromInt(40000000),
			InterestRate: decimal.NewFromFloat(1.2),
			MaxTerm:      72,
			Requirements: defaultRequirements,
			Icon:         "🎓",
		},
		{
			Name:         "Crédito Empresarial",
			Description:  "Dinero más rápido",
			MinAmount:    decimal.NewFromInt(500000),
			MaxAmount:    decimal.NewFromInt(30000000),
			InterestRate: decimal.NewFromFloat(1.6),
			MaxTerm:      120,
			Requirements: defaultRequirements,
			Icon:         "💼",
		},
		{
			Name:         "Crédito de consumo",
			Description:  "Dinero más rápido",
			MinAmount:    decimal.NewFromInt(500000),
			MaxAmount:    decimal.NewFromInt(15000000),
			InterestRate: decimal.NewFromFloat(2.1),
			MaxTerm:      60,
			Requirements: defaultRequirements,
			Icon:         "💳",
		},
	}
}
