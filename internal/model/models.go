package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditProduct is a credit offering from the catalog. Products are owned by
// the store; the application only ever reads them.
type CreditProduct struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Description  string          `db:"description" json:"description"`
	MinAmount    decimal.Decimal `db:"min_amount" json:"minAmount"`
	MaxAmount    decimal.Decimal `db:"max_amount" json:"maxAmount"`
	InterestRate decimal.Decimal `db:"interest_rate" json:"interestRate"` // nominal annual percentage, e.g. 1.8
	MaxTerm      int             `db:"max_term" json:"maxTerm"`           // months
	Requirements string          `db:"requirements" json:"requirements"`
	Icon         string          `db:"icon" json:"icon"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}

// ApplicationForm carries the raw applicant input, every field as submitted.
// Numeric fields stay strings until the validator has accepted them.
type ApplicationForm struct {
	FullName        string `json:"fullName"`
	IDCard          string `json:"idCard"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CreditType      string `json:"creditType"` // CreditProduct.ID
	RequestedAmount string `json:"requestedAmount"`
	Term            string `json:"term"` // months
	Purpose         string `json:"purpose"`
	Company         string `json:"company"`
	Position        string `json:"position"` // optional
	MonthlyIncome   string `json:"monthlyIncome"`
}

// ApplicationStatus is the back-office processing state of an application.
// This service only ever writes StatusPending; transitions happen elsewhere.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusApproved ApplicationStatus = "Approved"
	StatusRejected ApplicationStatus = "Rejected"
)

// CreditApplication is the persisted record of a submitted application.
// Created once at submission time and never mutated by this service.
type CreditApplication struct {
	ID                      uuid.UUID         `db:"id" json:"id"`
	FullName                string            `db:"full_name" json:"fullName"`
	IDCard                  string            `db:"id_card" json:"idCard"`
	Email                   string            `db:"email" json:"email"`
	Phone                   string            `db:"phone" json:"phone"`
	CreditType              uuid.UUID         `db:"credit_type" json:"creditType"`
	CreditName              string            `db:"credit_name" json:"creditName"` // denormalized product name
	RequestedAmount         decimal.Decimal   `db:"requested_amount" json:"requestedAmount"`
	Term                    int               `db:"term" json:"term"`
	Purpose                 string            `db:"purpose" json:"purpose"`
	Company                 string            `db:"company" json:"company"`
	Position                string            `db:"position" json:"position"`
	MonthlyIncome           decimal.Decimal   `db:"monthly_income" json:"monthlyIncome"`
	EstimatedMonthlyPayment decimal.Decimal   `db:"estimated_monthly_payment" json:"estimatedMonthlyPayment"`
	Status                  ApplicationStatus `db:"status" json:"status"`
	CreatedAt               time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt               time.Time         `db:"updated_at" json:"updatedAt"`
}
