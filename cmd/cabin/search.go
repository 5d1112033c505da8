package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search GitHub for cabin packages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := search.New()
		results, err := client.Search(globalCtx, args[0], searchLimit)
		if err != nil {
			return cabinerr.Wrap(cabinerr.KindDependency, "search failed", err)
		}
		if len(results) == 0 {
			fmt.Printf("No packages found for %q.\n", args[0])
			return nil
		}

		maxName := 4 // "NAME"
		for _, r := range results {
			if len(r.Name) > maxName {
				maxName = len(r.Name)
			}
		}

		fmt.Printf("%-*s  %s\n", maxName, "NAME", "REPOSITORY")
		for _, r := range results {
			fmt.Printf("%-*s  %s\n", maxName, r.Name, r.Repository)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
}
