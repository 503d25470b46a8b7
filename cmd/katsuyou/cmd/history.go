package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/katsuyou/internal/history"
	"github.com/f3rmion/katsuyou/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently conjugated verbs",
	Long: `List recently conjugated verbs, newest first.

Examples:
  katsuyou history
  katsuyou history delete 01J9Z3...
  katsuyou history clear`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete history entries",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}

var errHistoryDisabled = errors.New("history is disabled (history.enabled in config)")

func openHistory() (*app, error) {
	a, err := setup(setupOptions{history: true})
	if err != nil {
		return nil, err
	}
	if a.history == nil {
		a.Close()
		return nil, errHistoryDisabled
	}
	return a, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := openHistory()
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.history.List(context.Background())
	if err != nil {
		return err
	}
	r := render.New(render.Options{Color: a.config.Output.Color})
	fmt.Print(r.History(entries))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	a, err := openHistory()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, id := range args {
		if err := a.history.Delete(context.Background(), id); err != nil {
			if errors.Is(err, history.ErrNotFound) {
				return fmt.Errorf("no history entry %s", id)
			}
			return err
		}
		fmt.Printf("Deleted %s\n", id)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	a, err := openHistory()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.history.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("History cleared")
	return nil
}
