package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stockctl/internal/client/models"
)

// ListChanges fetches the change log for one item, newest first. Unlike the
// item listing, the changes endpoint has always paginated, so only the
// {"results": [...]} envelope is accepted here.
func (c *Client) ListChanges(ctx context.Context, itemID int64) ([]models.ChangeRecord, error) {
	q := url.Values{}
	q.Set("item", strconv.FormatInt(itemID, 10))

	raw, err := c.do(ctx, http.MethodGet, "/changes/", q, nil, true)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []models.ChangeRecord `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode change list: %w", err)
	}
	return envelope.Results, nil
}
