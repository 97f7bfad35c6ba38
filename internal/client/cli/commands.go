package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stockctl/internal/buildinfo"
	"stockctl/internal/client/api"
	"stockctl/internal/client/config"
	"stockctl/internal/logging"
)

// NewRootCmd builds the stockctl command tree. The app is constructed once
// flags have been parsed (PersistentPreRunE), so every flag and config-file
// value is in effect by the time a flow runs. Running with no subcommand
// opens the interactive dashboard.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var app *App

	root := &cobra.Command{
		Use:     "stockctl",
		Short:   "Terminal client for the inventory API",
		Long:    "stockctl manages inventory items on a remote inventory server:\nregister/login, list and filter items, create, edit and delete them,\nand inspect each item's quantity change history.",
		Version: buildinfo.String(),
		// Flows print their own failures; cobra only reports usage errors.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			app, err = NewApp(cmd.Context(), cfg, logging.NewDefault(cfg.Verbose))
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Run(cmd.Context())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.BaseURL, "addr", "a", cfg.BaseURL, "base URL of the inventory API (origin + /api)")
	pf.DurationVarP(&cfg.RequestTimeout, "timeout", "t", cfg.RequestTimeout, "per-request timeout")
	pf.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path of the credential database")
	pf.StringVarP(&cfg.CookieHeader, "cookie", "b", cfg.CookieHeader, "raw Cookie header to send verbatim (CSRF token is read from it)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log every request")
	// The config file is located and read before cobra parses anything,
	// because its values seed the flag defaults above. The flag is still
	// declared so it parses and shows up in help.
	pf.StringP("config", "c", "", "path to a JSON config file")

	root.AddCommand(
		newRegisterCmd(&app),
		newLoginCmd(&app),
		newLogoutCmd(&app),
		newListCmd(&app),
		newAddCmd(&app),
		newEditCmd(&app),
		newDeleteCmd(&app),
		newHistoryCmd(&app),
	)

	return root
}

func newRegisterCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account on the inventory server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return (*app).Register(cmd.Context())
		},
	}
}

func newLoginCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return (*app).Login(cmd.Context())
		},
	}
}

func newLogoutCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the session and clear the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return (*app).Logout(cmd.Context())
		},
	}
}

func newListCmd(app **App) *cobra.Command {
	var (
		category string
		search   string
		ordering string
		minPrice string
		maxPrice string
		lowStock int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List inventory items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := api.ItemFilter{
				Category: category,
				Search:   search,
				Ordering: ordering,
			}
			if minPrice != "" {
				d, err := decimal.NewFromString(minPrice)
				if err != nil {
					return fmt.Errorf("--min-price must be a decimal: %q", minPrice)
				}
				filter.MinPrice = &d
			}
			if maxPrice != "" {
				d, err := decimal.NewFromString(maxPrice)
				if err != nil {
					return fmt.Errorf("--max-price must be a decimal: %q", maxPrice)
				}
				filter.MaxPrice = &d
			}
			if lowStock >= 0 {
				filter.LowStock = &lowStock
			}
			return (*app).listFiltered(cmd.Context(), filter)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "exact category (case-insensitive)")
	cmd.Flags().StringVar(&search, "search", "", "match against name, description and category")
	cmd.Flags().StringVar(&ordering, "ordering", "", "sort field: name, quantity, price, last_updated (prefix with - for descending)")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")
	cmd.Flags().IntVar(&lowStock, "low-stock", -1, "only items with quantity at or below this threshold")

	return cmd
}

func newAddCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Create an item (interactive prompts)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return (*app).Add(cmd.Context())
		},
	}
}

func newEditCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item (prompts prefilled with its current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).Edit(cmd.Context(), args[0])
		},
	}
}

func newDeleteCmd(app **App) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"del"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).Delete(cmd.Context(), args[0], assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newHistoryCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show an item's quantity change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).History(cmd.Context(), args[0])
		},
	}
}
