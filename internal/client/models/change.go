package models

import "time"

// Change types the server records for item quantity mutations.
const (
	ChangeTypeRestock    = "restock"
	ChangeTypeSale       = "sale"
	ChangeTypeAdjustment = "adjustment"
)

// ChangeRecord is one append-only log entry describing a historical quantity
// mutation of an item. Read-only from the client's perspective. ChangedBy is
// empty when the acting user was since deleted (the server nulls the field).
type ChangeRecord struct {
	ID          int64     `json:"id"`
	Item        int64     `json:"item"`
	ChangedBy   string    `json:"changed_by"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	ChangeType  string    `json:"change_type"`
	ChangeDate  time.Time `json:"change_date"`
}
