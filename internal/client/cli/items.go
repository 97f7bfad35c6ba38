package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"stockctl/internal/client/api"
	"stockctl/internal/client/models"
)

// parseListArgs turns the REPL's "key=value" tokens into an ItemFilter.
// Supported keys mirror the server's filter params: category, search,
// ordering, min_price, max_price, low_stock.
func parseListArgs(args []string) (api.ItemFilter, error) {
	var f api.ItemFilter
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch k {
		case "category":
			f.Category = v
		case "search":
			f.Search = v
		case "ordering":
			f.Ordering = v
		case "min_price":
			d, err := decimal.NewFromString(v)
			if err != nil {
				return f, fmt.Errorf("min_price must be a decimal: %q", v)
			}
			f.MinPrice = &d
		case "max_price":
			d, err := decimal.NewFromString(v)
			if err != nil {
				return f, fmt.Errorf("max_price must be a decimal: %q", v)
			}
			f.MaxPrice = &d
		case "low_stock":
			n, err := strconv.Atoi(v)
			if err != nil {
				return f, fmt.Errorf("low_stock must be an integer: %q", v)
			}
			f.LowStock = &n
		default:
			return f, fmt.Errorf("unknown filter %q", k)
		}
	}
	return f, nil
}

func (a *App) List(ctx context.Context, args []string) error {
	filter, err := parseListArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	return a.listFiltered(ctx, filter)
}

func (a *App) listFiltered(ctx context.Context, filter api.ItemFilter) error {
	items, err := a.items.List(ctx, filter)
	if err != nil {
		a.showError(err, false)
		return err
	}
	fmt.Fprintln(a.out, renderItems(items))
	return nil
}

// refreshList re-fetches and redraws the unfiltered item list. Rendered
// copies are never trusted after a mutation.
func (a *App) refreshList(ctx context.Context) {
	_ = a.listFiltered(ctx, api.ItemFilter{})
}

func (a *App) Add(ctx context.Context) error {
	in, err := a.promptItemInput(nil)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if _, err := a.items.Save(ctx, 0, in); err != nil {
		a.showError(err, true)
		return err
	}

	fmt.Fprintln(a.out, "Item saved.")
	a.refreshList(ctx)
	return nil
}

func (a *App) Edit(ctx context.Context, idArg string) error {
	id, err := a.resolveID(idArg, "Enter item id to edit")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	item, err := a.items.Get(ctx, id)
	if err != nil {
		a.showError(err, false)
		return err
	}

	in, err := a.promptItemInput(item)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if _, err := a.items.Save(ctx, id, in); err != nil {
		a.showError(err, true)
		return err
	}

	fmt.Fprintln(a.out, "Item saved.")
	a.refreshList(ctx)
	return nil
}

func (a *App) Delete(ctx context.Context, idArg string, assumeYes bool) error {
	id, err := a.resolveID(idArg, "Enter item id to delete")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if !assumeYes {
		ok, err := getConfirm(a.reader, fmt.Sprintf("Delete item %d?", id), a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Aborted.")
			return nil
		}
	}

	err = a.items.Delete(ctx, id)
	if err != nil {
		a.showError(err, false)
	}
	// The list is refreshed whether or not the delete went through.
	a.refreshList(ctx)
	return err
}

// promptItemInput collects the item fields, prefilled from current when
// editing. Numeric parsing here is syntactic only; range and business
// validation belong to the server.
func (a *App) promptItemInput(current *models.Item) (models.ItemInput, error) {
	var def models.Item
	if current != nil {
		def = *current
	}

	name, err := getTextDefault(a.reader, "Name", def.Name, a.out)
	if err != nil {
		return models.ItemInput{}, err
	}
	description, err := getTextDefault(a.reader, "Description", def.Description, a.out)
	if err != nil {
		return models.ItemInput{}, err
	}
	quantityStr, err := getTextDefault(a.reader, "Quantity", strconv.Itoa(def.Quantity), a.out)
	if err != nil {
		return models.ItemInput{}, err
	}
	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		return models.ItemInput{}, fmt.Errorf("quantity must be an integer: %q", quantityStr)
	}
	priceStr, err := getTextDefault(a.reader, "Price", def.Price.StringFixed(2), a.out)
	if err != nil {
		return models.ItemInput{}, err
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return models.ItemInput{}, fmt.Errorf("price must be a decimal: %q", priceStr)
	}
	category, err := getTextDefault(a.reader, "Category", def.Category, a.out)
	if err != nil {
		return models.ItemInput{}, err
	}

	return models.ItemInput{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Category:    category,
	}, nil
}

func (a *App) resolveID(idArg, prompt string) (int64, error) {
	if idArg == "" {
		var err error
		idArg, err = getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", idArg)
	}
	return id, nil
}
