// Command ynab-sync runs the local-replica sync engine and its MCP tool
// surface on top of the YNAB API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ynab-sync",
		Short: "Local-replica sync engine and MCP tool surface for YNAB",
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newHistoryCmd())
	return root
}
