package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/credifacil/backend/internal/model"
)

// ApplicationRepository persists submitted credit applications. One insert per
// submission; records are never updated by this service afterwards.
type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application record. Timestamps come from the database
// clock rather than the process clock, so records are consistent even when
// application servers drift.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.CreditApplication) error {
	query := `
		INSERT INTO credit_requests (
			id, full_name, id_card, email, phone, credit_type, credit_name,
			requested_amount, term, purpose, company, position, monthly_income,
			estimated_monthly_payment, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING created_at, updated_at`

	app.ID = uuid.New()
	err := r.db.QueryRowxContext(ctx, query,
		app.ID, app.FullName, app.IDCard, app.Email, app.Phone, app.CreditType, app.CreditName,
		app.RequestedAmount, app.Term, app.Purpose, app.Company, app.Position, app.MonthlyIncome,
		app.EstimatedMonthlyPayment, app.Status,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create credit request: %w", err)
	}
	return nil
}
