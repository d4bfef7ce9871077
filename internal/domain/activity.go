package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityRetention is how long activity entries are kept.
const ActivityRetention = 24 * time.Hour

// Activity descriptions shown on the dashboard.
const (
	ActivityClientCreated = "Novo cliente adicionado"
	ActivityClientDeleted = "Cliente excluído"
	ActivityClientUpdated = "Cliente atualizado"
)

// Activity is an append-only, human-readable audit entry.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	AgencyID    uuid.UUID `json:"agencyId"`
	Description string    `json:"description"`
	Detail      *string   `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"timestamp"`
}

// BulkDeleteDescription summarizes a bulk deletion of n clients.
func BulkDeleteDescription(n int) string {
	return fmt.Sprintf("%d clientes excluídos em massa", n)
}

// BulkUpdateDescription summarizes a bulk edit of n clients.
func BulkUpdateDescription(n int) string {
	return fmt.Sprintf("%d clientes atualizados em massa", n)
}

// ImportDescription summarizes a CSV import of n clients.
func ImportDescription(n int) string {
	return fmt.Sprintf("%d clientes importados", n)
}
