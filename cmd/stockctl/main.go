package main

import (
	"context"
	"fmt"
	"os"

	"stockctl/internal/client/cli"
	"stockctl/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	if err := cli.NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "stockctl: %v\n", err)
		os.Exit(1)
	}
}
