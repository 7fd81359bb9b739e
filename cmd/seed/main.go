// Command seed bootstraps the store: it creates the two tables if they do not
// exist and loads the six launch products into an empty catalog. One-shot; it
// is not part of runtime behavior.
package main

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/credifacil/backend/internal/config"
	"github.com/credifacil/backend/internal/repository"
	"github.com/credifacil/backend/internal/service"
)

const schema = `
CREATE TABLE IF NOT EXISTS credits (
    id UUID PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    min_amount DECIMAL(15, 0) NOT NULL,
    max_amount DECIMAL(15, 0) NOT NULL,
    interest_rate DECIMAL(6, 3) NOT NULL,
    max_term INT NOT NULL,
    requirements TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    CHECK (min_amount <= max_amount)
);

CREATE TABLE IF NOT EXISTS credit_requests (
    id UUID PRIMARY KEY,
    full_name VARCHAR(255) NOT NULL,
    id_card VARCHAR(50) NOT NULL,
    email VARCHAR(255) NOT NULL,
    phone VARCHAR(50) NOT NULL,
    credit_type UUID NOT NULL REFERENCES credits(id),
    credit_name VARCHAR(255) NOT NULL,
    requested_amount DECIMAL(15, 0) NOT NULL,
    term INT NOT NULL,
    purpose TEXT NOT NULL,
    company VARCHAR(255) NOT NULL,
    position VARCHAR(255) NOT NULL DEFAULT '',
    monthly_income DECIMAL(15, 0) NOT NULL,
    estimated_monthly_payment DECIMAL(15, 2) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'Pending',
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	catalog := service.NewCatalogService(repository.NewCreditRepository(db))

	n, err := catalog.SeedDefaults(ctx)
	if err != nil {
		log.Fatalf("Failed to seed credits: %v", err)
	}
	if n == 0 {
		log.Println("Catalog already populated, nothing to do")
		return
	}
	log.Printf("Seeded %d credit products", n)
}
