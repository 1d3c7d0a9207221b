// Command jormungandr trains and tests tabular reinforcement learning
// agents on the grid snake environment
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "jormungandr",
		Short: "Tabular reinforcement learning for a grid snake",
	}
	addFlags(root)
	root.AddCommand(TrainCommand(), TestCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
