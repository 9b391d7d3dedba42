package main

import (
	"fmt"

	"github.com/ib-77/staticflow/pkg/flow/branch"
	"github.com/ib-77/staticflow/pkg/flow/loop"
	"github.com/spf13/cobra"
)

var states = map[string]string{
	"apple": "solid",
	"bread": "solid",
	"ice":   "solid",
	"juice": "liquid",
	"milk":  "liquid",
	"water": "liquid",
}

func react(word string) string {
	state := states[word]

	return branch.If[string, string](state == "solid").
		Then(func(w string) string { return "eat " + w }).
		ElseIf(state == "liquid").
		Then(func(w string) string { return "drink " + w }).
		Else(func(w string) string { return "reject " + w }).
		Func()(word)
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [words...]",
		Short: "Eat solids, drink liquids, reject the rest",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			loop.ForArgs(func(word string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", word, react(word))
			}, args...)
		},
	}
}
