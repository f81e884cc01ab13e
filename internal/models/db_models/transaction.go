package db_models

import (
	"github.com/google/uuid"
)

const (
	TxnStatusPending  = "pending"
	TxnStatusPaid     = "paid"
	TxnStatusFailed   = "failed"
	TxnStatusCanceled = "canceled"
)

type Transaction struct {
	BaseModel
	BookingID     uuid.UUID `gorm:"type:uuid;index"`
	AmountMinor   int64
	Currency      string
	Status        string
	Provider      string
	ProviderTxnID string `gorm:"uniqueIndex"`
	PaidAt        int64
	Metadata      []byte `gorm:"type:jsonb"`
}
