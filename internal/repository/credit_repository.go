package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/credifacil/backend/internal/model"
)

var ErrCreditNotFound = errors.New("credit product not found")

// CreditRepository reads the credit product catalog. Products are seeded by
// tooling and never written during normal request handling.
type CreditRepository struct {
	db *sqlx.DB
}

func NewCreditRepository(db *sqlx.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

// List returns the full catalog. The catalog is small and the product surfaces
// always render all of it, so there is no filtering or pagination.
func (r *CreditRepository) List(ctx context.Context) ([]model.CreditProduct, error) {
	var products []model.CreditProduct
	query := `SELECT * FROM credits ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	return products, nil
}

func (r *CreditRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CreditProduct, error) {
	var product model.CreditProduct
	query := `SELECT * FROM credits WHERE id = $1`
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get credit %s: %w", id, err)
	}
	return &product, nil
}

// Count returns the number of products in the catalog.
func (r *CreditRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM credits`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count credits: %w", err)
	}
	return count, nil
}

// Create inserts a catalog product. Used by seed tooling only.
func (r *CreditRepository) Create(ctx context.Context, product *model.CreditProduct) error {
	query := `
		INSERT INTO credits (id, name, description, min_amount, max_amount, interest_rate, max_term, requirements, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	product.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		product.ID, product.Name, product.Description, product.MinAmount, product.MaxAmount,
		product.InterestRate, product.MaxTerm, product.Requirements, product.Icon,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}
