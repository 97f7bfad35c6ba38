package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"stockctl/internal/client/models"
)

func TestRenderItems(t *testing.T) {
	updated := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	items := []models.Item{
		{ID: 1, Name: "Bolt", Description: "M8 bolt", Quantity: 120, Price: decimal.RequireFromString("0.25"), Category: "hardware", LastUpdated: updated},
		{ID: 2, Name: "Widget", Quantity: 3, Price: decimal.RequireFromString("19.9"), Category: "gadgets"},
	}

	out := renderItems(items)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Bolt")
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "0.25")
	assert.Contains(t, out, "19.90", "prices are shown with two decimals")
	assert.Contains(t, out, "hardware")
}

func TestRenderItems_Empty(t *testing.T) {
	out := renderItems(nil)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "UPDATED")
}

func TestRenderHistory(t *testing.T) {
	changes := []models.ChangeRecord{
		{ChangeType: models.ChangeTypeRestock, OldQuantity: 0, NewQuantity: 50, ChangedBy: "alice"},
		{ChangeType: models.ChangeTypeSale, OldQuantity: 50, NewQuantity: 42},
	}

	out := renderHistory(7, changes)

	assert.Contains(t, out, "History for item 7")
	assert.Contains(t, out, "restock")
	assert.Contains(t, out, "0 -> 50")
	assert.Contains(t, out, "(by alice)")
	assert.Contains(t, out, "50 -> 42")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := renderHistory(7, nil)
	assert.Contains(t, out, "No recorded changes.")
}
