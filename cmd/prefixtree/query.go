package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func buildQueryCmd(app *cli) *cobra.Command {
	query := &cobra.Command{
		Use:   "query PREFIX...",
		Short: "Prints the words of a word list starting with each prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := cmd.Flags().GetString("words")
			if err != nil {
				return err
			}
			t := app.newTree()
			if err := app.load(t, words, cmd.InOrStdin()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, prefix := range args {
				fmt.Fprintf(out, "%s: %s\n", prefix, strings.Join(t.Get(prefix), " "))
			}
			return nil
		},
	}
	query.Flags().String("words", "", "File with one word per line. Reads stdin when empty.")
	return query
}
