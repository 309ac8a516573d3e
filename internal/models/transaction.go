package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ledger entry types
const (
	TransactionTypeDebit    = "DEBIT"
	TransactionTypeCredit   = "CREDIT"
	TransactionTypePendant  = "PENDANT"
	TransactionTypeReversal = "REVERSAL"
)

// Transaction is a single money movement in the ledger. Entries are
// append-only: the only mutation permitted anywhere in the system is the
// settlement-time bulk reclassification of PENDANT entries to CREDIT,
// scoped to one package's reservations.
type Transaction struct {
	ID            string          `gorm:"primaryKey;size:24" json:"id"`
	Type          string          `gorm:"not null;index" json:"type"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	UserID        *string         `gorm:"size:24;index" json:"user_id,omitempty"`
	DriverID      *string         `gorm:"size:24;index" json:"driver_id,omitempty"`
	ReservationID *string         `gorm:"size:24;index" json:"reservation_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Metadata      JSON            `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}
