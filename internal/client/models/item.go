// Package models defines the client-side copies of the entities owned by the
// inventory API. The server holds the authoritative state; these types only
// carry one response's worth of data to the rendering layer.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single inventory record as returned by the API. Price is a
// 2-decimal-place value the server serializes as a JSON string but may also
// send as a number; decimal.Decimal accepts both.
//
// DateAdded, LastUpdated and Owner are read-only on the server side and
// never sent back.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	DateAdded   time.Time       `json:"date_added"`
	LastUpdated time.Time       `json:"last_updated"`
	Owner       string          `json:"owner"`
}

// ItemInput is the writable subset of Item sent on create and update.
type ItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}
