package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coltoneshaw/ynabsync/internal/sync"
	"github.com/coltoneshaw/ynabsync/internal/syncconfig"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Operate on the sync history audit trail",
	}
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	var budgetID string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete recorded sync history, for one budget or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := syncconfig.Load()
			if err != nil {
				return err
			}

			store := sync.NewHistoryStore(cfg.ConfigRoot)
			if err := store.Clear(budgetID); err != nil {
				return err
			}

			if budgetID == "" {
				fmt.Println("cleared sync history for all budgets")
			} else {
				fmt.Printf("cleared sync history for budget %s\n", budgetID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&budgetID, "budget-id", "", "budget id to clear history for (default: all budgets)")
	return cmd
}
