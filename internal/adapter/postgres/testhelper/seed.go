package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account of the given kind with a throwaway password hash.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, kind domain.AccountKind) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	acc := domain.Account{
		ID:           uuid.New(),
		Email:        string(kind) + "-" + suffix + "@example.com",
		Name:         "Test " + suffix,
		Kind:         kind,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, email, name, kind, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		acc.ID, acc.Email, acc.Name, string(acc.Kind), acc.PasswordHash, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return acc
}

// SeedAgency is SeedAccount for an agency account.
func SeedAgency(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return SeedAccount(t, pool, domain.AccountKindAgency)
}

// SeedClient inserts a client owned by agencyID. Zero fields of c get test
// defaults; CreatedAt defaults to now.
func SeedClient(t *testing.T, pool *pgxpool.Pool, agencyID uuid.UUID, c domain.Client) domain.Client {
	t.Helper()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.AgencyID = agencyID
	if c.Name == "" {
		c.Name = "Client " + uniqueSuffix()
	}
	if c.Status == "" {
		c.Status = domain.ClientStatusProspective
	}
	if c.Notes == nil {
		c.Notes = []string{}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO clients (id, agency_id, name, email, phone, company, address, status, notes, document, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.AgencyID, c.Name, c.Email, c.Phone, c.Company, c.Address, string(c.Status), c.Notes, c.Document, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}
	return c
}

// SeedClients inserts n clients with strictly decreasing creation times so
// the returned slice is already in page order (newest first).
func SeedClients(t *testing.T, pool *pgxpool.Pool, agencyID uuid.UUID, n int) []domain.Client {
	t.Helper()

	base := time.Now().UTC().Truncate(time.Microsecond)
	out := make([]domain.Client, n)
	for i := range n {
		out[i] = SeedClient(t, pool, agencyID, domain.Client{
			Name:      fmt.Sprintf("Client %03d", i),
			CreatedAt: base.Add(-time.Duration(i) * time.Second),
		})
	}
	return out
}

// SeedActivity inserts an activity entry at the given time.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, agencyID uuid.UUID, description string, at time.Time) domain.Activity {
	t.Helper()

	a := domain.Activity{
		ID:          uuid.New(),
		AgencyID:    agencyID,
		Description: description,
		CreatedAt:   at.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO activities (id, agency_id, description, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.AgencyID, a.Description, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}
	return a
}
