package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var demoWords = []string{"anton", "berta", "brett", "brot", "ei", "end"}

func buildDemoCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walks through adding, querying and removing a handful of words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.demo(cmd.OutOrStdout())
		},
	}
}

func (c *cli) demo(out io.Writer) error {
	t := c.newTree()
	if !t.AddAll(demoWords...) {
		return fmt.Errorf("failed to add %v", demoWords)
	}
	fmt.Fprintln(out, t)
	fmt.Fprintln(out, t.Get("br"))

	if !t.Remove("brot") {
		return fmt.Errorf("failed to remove brot")
	}
	fmt.Fprintln(out, t)
	fmt.Fprintln(out, t.GetAll())
	fmt.Fprintln(out, t.Get("br"))
	fmt.Fprintln(out, t.Get("e"))
	return nil
}
