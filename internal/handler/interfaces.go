package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credifacil/backend/internal/model"
	"github.com/credifacil/backend/internal/service"
)

// CatalogServiceInterface for handler testing
type CatalogServiceInterface interface {
	List(ctx context.Context) ([]model.CreditProduct, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CreditProduct, error)
	Simulate(ctx context.Context, creditID uuid.UUID, amount decimal.Decimal, termMonths int) (*service.SimulationResult, error)
	SeedDefaults(ctx context.Context) (int, error)
}

// ApplicationServiceInterface for handler testing
type ApplicationServiceInterface interface {
	Submit(ctx context.Context, form model.ApplicationForm) (*model.CreditApplication, error)
}
