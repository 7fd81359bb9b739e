package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/credifacil/backend/internal/model"
)

func TestCatalogService_List(t *testing.T) {
	t.Parallel()

	t.Run("returns every product", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)

		products := []model.CreditProduct{*libreInversion(), *libreInversion()}
		repo.On("List", mock.Anything).Return(products, nil)

		got, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)

		repo.On("List", mock.Anything).Return(nil, errors.New("store unavailable"))

		got, err := svc.List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCatalogService_Get(t *testing.T) {
	t.Parallel()

	repo := new(MockCreditRepo)
	svc := NewCatalogService(repo)

	product := libreInversion()
	repo.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	got, err := svc.Get(context.Background(), product.ID)

	assert.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
}

func TestCatalogService_Simulate(t *testing.T) {
	t.Parallel()

	product := libreInversion() // rate 1.8

	t.Run("computes flat-interest estimate", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)
		repo.On("GetByID", mock.Anything, product.ID).Return(product, nil)

		result, err := svc.Simulate(context.Background(), product.ID, decimal.NewFromInt(10000000), 12)

		assert.NoError(t, err)
		// 10,000,000 * (1 + 0.018 * 12/12) / 12
		assert.InDelta(t, 848333.3333, result.MonthlyPayment.InexactFloat64(), 0.01)
		assert.Equal(t, "$ 848.333", result.MonthlyPaymentFormatted)
		assert.Equal(t, product.Name, result.CreditName)
		assert.Equal(t, 12, result.TermMonths)
	})

	t.Run("rejects term outside the fixed set", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)

		_, err := svc.Simulate(context.Background(), product.ID, decimal.NewFromInt(10000000), 18)
		assert.ErrorIs(t, err, ErrInvalidTerm)

		_, err = svc.Simulate(context.Background(), product.ID, decimal.NewFromInt(10000000), 0)
		assert.ErrorIs(t, err, ErrInvalidTerm)
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)

		_, err := svc.Simulate(context.Background(), product.ID, decimal.NewFromInt(-1), 12)
		assert.ErrorIs(t, err, ErrNegativeAmount)
		repo.AssertNotCalled(t, "GetByID")
	})
}

func TestCatalogService_SeedDefaults(t *testing.T) {
	t.Parallel()

	t.Run("seeds six products into an empty catalog", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)

		repo.On("Count", mock.Anything).Return(0, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.CreditProduct")).Return(nil)

		n, err := svc.SeedDefaults(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 6, n)
		repo.AssertNumberOfCalls(t, "Create", 6)
	})

	t.Run("leaves a populated catalog untouched", func(t *testing.T) {
		t.Parallel()

		repo := new(MockCreditRepo)
		svc := NewCatalogService(repo)

		repo.On("Count", mock.Anything).Return(6, nil)

		n, err := svc.SeedDefaults(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, n)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestDefaultCredits(t *testing.T) {
	t.Parallel()

	products := DefaultCredits()
	assert.Len(t, products, 6)

	for _, p := range products {
		assert.True(t, p.MinAmount.LessThanOrEqual(p.MaxAmount), "%s bounds inverted", p.Name)
		assert.True(t, p.InterestRate.IsPositive(), "%s rate not positive", p.Name)
		assert.Greater(t, p.MaxTerm, 0, "%s max term not positive", p.Name)
		assert.NotEmpty(t, p.Requirements)
		assert.Equal(t, uuid.Nil, p.ID, "%s id should be store-assigned", p.Name)
	}
}
