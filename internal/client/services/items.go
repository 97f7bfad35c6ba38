package services

import (
	"context"

	"stockctl/internal/client/api"
	"stockctl/internal/client/models"
)

// itemAPI is the slice of the API client the item service needs.
type itemAPI interface {
	ListItems(ctx context.Context, filter api.ItemFilter) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, in models.ItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ListChanges(ctx context.Context, itemID int64) ([]models.ChangeRecord, error)
}

// ItemService exposes the item CRUD and history flows. Save routes by id:
// zero means create, anything else is an idempotent replace of that item.
// The client never patches local copies; after any mutation the caller
// re-fetches the list.
type ItemService interface {
	List(ctx context.Context, filter api.ItemFilter) ([]models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Save(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
	History(ctx context.Context, id int64) ([]models.ChangeRecord, error)
}

type itemService struct {
	api itemAPI
}

// NewItemService constructs an ItemService bound to the given API client.
func NewItemService(api itemAPI) ItemService {
	return &itemService{api: api}
}

func (s *itemService) List(ctx context.Context, filter api.ItemFilter) ([]models.Item, error) {
	return s.api.ListItems(ctx, filter)
}

func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.api.GetItem(ctx, id)
}

func (s *itemService) Save(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error) {
	if id == 0 {
		return s.api.CreateItem(ctx, in)
	}
	return s.api.UpdateItem(ctx, id, in)
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteItem(ctx, id)
}

func (s *itemService) History(ctx context.Context, id int64) ([]models.ChangeRecord, error) {
	return s.api.ListChanges(ctx, id)
}
