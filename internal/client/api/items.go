package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"stockctl/internal/client/models"
)

// ItemFilter narrows and orders the item listing. Zero values mean
// "don't filter on this". Ordering takes a field name (name, quantity,
// price, last_updated), "-"-prefixed for descending.
type ItemFilter struct {
	Category string
	Search   string
	Ordering string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	LowStock *int
}

func (f ItemFilter) query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}
	if f.MinPrice != nil {
		q.Set("min_price", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("max_price", f.MaxPrice.String())
	}
	if f.LowStock != nil {
		q.Set("low_stock", strconv.Itoa(*f.LowStock))
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// ListItems fetches the item collection. The server answers either with a
// bare array or with a paginated {"results": [...]} envelope depending on
// its pagination settings; both normalize to a slice. An empty collection
// is a valid answer, not an error.
func (c *Client) ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	raw, err := c.do(ctx, http.MethodGet, "/items/", filter.query(), nil, true)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []models.Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode item list: %w", err)
		}
		return items, nil
	}

	var envelope struct {
		Results []models.Item `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode item list: %w", err)
	}
	return envelope.Results, nil
}

// GetItem fetches a single item for editing.
func (c *Client) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	raw, err := c.do(ctx, http.MethodGet, itemPath(id), nil, nil, true)
	if err != nil {
		return nil, err
	}
	var item models.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &item, nil
}

// CreateItem adds a new item.
func (c *Client) CreateItem(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	raw, err := c.do(ctx, http.MethodPost, "/items/", nil, in, true)
	if err != nil {
		return nil, err
	}
	var item models.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode created item: %w", err)
	}
	return &item, nil
}

// UpdateItem replaces an existing item (idempotent PUT).
func (c *Client) UpdateItem(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error) {
	raw, err := c.do(ctx, http.MethodPut, itemPath(id), nil, in, true)
	if err != nil {
		return nil, err
	}
	var item models.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode updated item: %w", err)
	}
	return &item, nil
}

// DeleteItem removes an item. The server answers 204 with no body.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(id), nil, nil, true)
	return err
}

func itemPath(id int64) string {
	return fmt.Sprintf("/items/%d/", id)
}
