package utils

import (
	"time"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// NewAuditFields returns audit fields stamped with the current time.
func NewAuditFields() domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
}
