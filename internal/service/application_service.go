package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credifacil/backend/internal/apperror"
	"github.com/credifacil/backend/internal/logger"
	"github.com/credifacil/backend/internal/model"
	"github.com/credifacil/backend/internal/repository"
	"github.com/credifacil/backend/pkg/currency"
	"github.com/credifacil/backend/pkg/loan"
)

// MinMonthlyIncome is the eligibility floor for every product, in pesos.
var MinMonthlyIncome = decimal.NewFromInt(1200000)

// emailPattern accepts the usual local@domain.tld shape. Intentionally loose:
// anything without whitespace or a second @ on either side of a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// ApplicationRepositoryInterface defines the contract for application persistence.
type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, app *model.CreditApplication) error
}

// ApplicationService validates and submits credit applications.
type ApplicationService struct {
	apps    ApplicationRepositoryInterface
	credits CreditRepositoryInterface
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(apps ApplicationRepositoryInterface, credits CreditRepositoryInterface) *ApplicationService {
	return &ApplicationService{apps: apps, credits: credits}
}

// Validate evaluates every submission rule over the raw form and returns a
// field -> message map with an entry per failing field. An empty map means the
// form is submittable. Rules are independent: one bad field never hides
// another, and the result depends only on the final field values.
//
// product is the catalog entry referenced by form.CreditType, or nil when no
// product is selected; the amount-range rule only applies with a product.
func Validate(form model.ApplicationForm, product *model.CreditProduct) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(form.FullName) == "" {
		errs["fullName"] = "El nombre es obligatorio"
	}

	if idCard := strings.TrimSpace(form.IDCard); len(idCard) < 7 || !digitsPattern.MatchString(idCard) {
		errs["idCard"] = "Cédula debe tener mínimo 7 dígitos"
	}

	if form.Email == "" || !emailPattern.MatchString(form.Email) {
		errs["email"] = "Email inválido"
	}

	if len(strings.TrimSpace(form.Phone)) < 10 {
		errs["phone"] = "Teléfono debe tener 10 dígitos"
	}

	if strings.TrimSpace(form.CreditType) == "" {
		errs["creditType"] = "Selecciona un tipo de crédito"
	}

	if form.RequestedAmount == "" {
		errs["requestedAmount"] = "El monto es obligatorio"
	} else if amount, err := decimal.NewFromString(form.RequestedAmount); err != nil {
		errs["requestedAmount"] = "Monto inválido"
	} else if product != nil {
		if amount.LessThan(product.MinAmount) || amount.GreaterThan(product.MaxAmount) {
			errs["requestedAmount"] = "El monto debe estar entre " +
				currency.FormatCOP(product.MinAmount) + " y " + currency.FormatCOP(product.MaxAmount)
		}
	}

	if form.Term == "" {
		errs["term"] = "Selecciona un plazo"
	} else if term, err := strconv.Atoi(form.Term); err != nil || !loan.IsAllowedTerm(term) {
		errs["term"] = "Selecciona un plazo válido"
	}

	if strings.TrimSpace(form.Purpose) == "" {
		errs["purpose"] = "Describe el destino del crédito"
	}

	if strings.TrimSpace(form.Company) == "" {
		errs["company"] = "La empresa es obligatoria"
	}

	if income, err := decimal.NewFromString(form.MonthlyIncome); form.MonthlyIncome == "" || err != nil || income.LessThan(MinMonthlyIncome) {
		errs["monthlyIncome"] = "Ingresos mínimos: $1.200.000"
	}

	// position is optional: never validated.

	return errs
}

// Submit validates the form, estimates the installment and writes the
// application record with status Pending. It performs exactly one store write
// and never retries; on store failure the caller gets a single generic
// submission error and decides whether the user resubmits.
func (s *ApplicationService) Submit(ctx context.Context, form model.ApplicationForm) (*model.CreditApplication, error) {
	product, fieldErr, err := s.resolveProduct(ctx, form.CreditType)
	if err != nil {
		return nil, apperror.Wrap(err, "Error al enviar la solicitud. Intenta de nuevo.")
	}

	errs := Validate(form, product)
	if fieldErr != "" {
		errs["creditType"] = fieldErr
	}
	if len(errs) > 0 {
		return nil, apperror.ValidationFields(errs)
	}

	// The validator accepted these, so the conversions cannot fail and the
	// term satisfies the estimator's positive-term precondition.
	amount, _ := decimal.NewFromString(form.RequestedAmount)
	term, _ := strconv.Atoi(form.Term)
	income, _ := decimal.NewFromString(form.MonthlyIncome)

	payment := loan.EstimateMonthlyPayment(amount, term, product.InterestRate)

	app := &model.CreditApplication{
		FullName:                form.FullName,
		IDCard:                  strings.TrimSpace(form.IDCard),
		Email:                   form.Email,
		Phone:                   strings.TrimSpace(form.Phone),
		CreditType:              product.ID,
		CreditName:              product.Name,
		RequestedAmount:         amount,
		Term:                    term,
		Purpose:                 form.Purpose,
		Company:                 form.Company,
		Position:                form.Position,
		MonthlyIncome:           income,
		EstimatedMonthlyPayment: payment,
		Status:                  model.StatusPending,
	}

	if err := s.apps.Create(ctx, app); err != nil {
		logger.FromContext(ctx).Error("credit request write failed", "error", err)
		return nil, apperror.Wrap(err, "Error al enviar la solicitud. Intenta de nuevo.")
	}

	logger.FromContext(ctx).Info("credit request submitted",
		"application_id", app.ID,
		"credit_name", app.CreditName,
		"term", app.Term,
	)
	return app, nil
}

// resolveProduct looks up the selected product. A blank, malformed or unknown
// creditType yields a field message for the validator result instead of an
// error; only a store failure is an error.
func (s *ApplicationService) resolveProduct(ctx context.Context, creditType string) (*model.CreditProduct, string, error) {
	raw := strings.TrimSpace(creditType)
	if raw == "" {
		return nil, "", nil // Validate emits the required-field message
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, "Selecciona un tipo de crédito válido", nil
	}

	product, err := s.credits.GetByID(ctx, id)
	if errors.Is(err, repository.ErrCreditNotFound) {
		return nil, "Selecciona un tipo de crédito válido", nil
	}
	if err != nil {
		return nil, "", err
	}
	return product, "", nil
}
