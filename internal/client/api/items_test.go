package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockctl/internal/client/models"
)

func itemInput(name string) models.ItemInput {
	return models.ItemInput{
		Name:     name,
		Quantity: 5,
		Price:    decimal.RequireFromString("9.99"),
		Category: "test",
	}
}

func authedClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c := newTestClient(t, srv, nil, "")
	require.NoError(t, c.creds.SetToken(context.Background(), "abc"))
	return c
}

func TestListItems_Normalization(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantNames []string
	}{
		{
			name:      "paginated envelope",
			body:      `{"count": 2, "next": null, "previous": null, "results": [{"id":1,"name":"Bolt","quantity":1,"price":"1.00"},{"id":2,"name":"Nut","quantity":2,"price":"2.00"}]}`,
			wantNames: []string{"Bolt", "Nut"},
		},
		{
			name:      "bare array",
			body:      `[{"id":1,"name":"Bolt","quantity":1,"price":"1.00"}]`,
			wantNames: []string{"Bolt"},
		},
		{
			name:      "empty array",
			body:      `[]`,
			wantNames: []string{},
		},
		{
			name:      "empty envelope",
			body:      `{"count": 0, "results": []}`,
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			items, err := authedClient(t, srv).ListItems(context.Background(), ItemFilter{})
			require.NoError(t, err)

			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestListItems_FilterQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	minPrice := decimal.RequireFromString("1.50")
	lowStock := 5
	filter := ItemFilter{
		Category: "hardware",
		Search:   "bolt",
		Ordering: "-last_updated",
		MinPrice: &minPrice,
		LowStock: &lowStock,
	}

	_, err := authedClient(t, srv).ListItems(context.Background(), filter)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "category=hardware")
	assert.Contains(t, gotQuery, "search=bolt")
	assert.Contains(t, gotQuery, "ordering=-last_updated")
	assert.Contains(t, gotQuery, "min_price=1.5")
	assert.Contains(t, gotQuery, "low_stock=5")
	assert.NotContains(t, gotQuery, "max_price")
}

func TestCreateItem_RoutesToCollection(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Method: r.Method, Path: r.URL.Path}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 10, "name": "Bolt", "quantity": 5, "price": "9.99"}`))
	}))
	defer srv.Close()

	item, err := authedClient(t, srv).CreateItem(context.Background(), itemInput("Bolt"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/items/", got.Path)
	assert.EqualValues(t, 10, item.ID)
}

func TestUpdateItem_RoutesToItem(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Method: r.Method, Path: r.URL.Path}
		w.Write([]byte(`{"id": 10, "name": "Bolt", "quantity": 7, "price": "9.99"}`))
	}))
	defer srv.Close()

	item, err := authedClient(t, srv).UpdateItem(context.Background(), 10, itemInput("Bolt"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/api/items/10/", got.Path)
	assert.Equal(t, 7, item.Quantity)
}

func TestGetItem(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Method: r.Method, Path: r.URL.Path}
		w.Write([]byte(`{"id": 3, "name": "Nut", "description": "small", "quantity": 2, "price": "0.10", "category": "hardware"}`))
	}))
	defer srv.Close()

	item, err := authedClient(t, srv).GetItem(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/items/3/", got.Path)
	assert.Equal(t, "Nut", item.Name)
	assert.Equal(t, "small", item.Description)
}

func TestDeleteItem_NoContentResponse(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := authedClient(t, srv).DeleteItem(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/items/4/", got.Path)
	assert.Equal(t, "Token abc", got.Header.Get("Authorization"))
}

func TestListChanges_EnvelopeAndQuery(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		w.Write([]byte(`{"count": 1, "results": [{"id": 1, "item": 7, "changed_by": "alice", "old_quantity": 5, "new_quantity": 20, "change_type": "restock", "change_date": "2024-03-04T12:00:00Z"}]}`))
	}))
	defer srv.Close()

	changes, err := authedClient(t, srv).ListChanges(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "/api/changes/", got.Path)
	assert.Equal(t, "item=7", got.Query)
	require.Len(t, changes, 1)
	assert.Equal(t, models.ChangeTypeRestock, changes[0].ChangeType)
	assert.Equal(t, "alice", changes[0].ChangedBy)
}
