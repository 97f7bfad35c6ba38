package cli

import (
	"context"
	"fmt"
)

func (a *App) History(ctx context.Context, idArg string) error {
	id, err := a.resolveID(idArg, "Enter item id")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	changes, err := a.items.History(ctx, id)
	if err != nil {
		a.showError(err, false)
		return err
	}

	fmt.Fprintln(a.out, renderHistory(id, changes))
	return nil
}
