// SPDX-License-Identifier: MIT
package domirank_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/domirank"
	"github.com/katalvlaran/domirank/core"
)

// Compute DomiRank for a small path graph with default parameters.
// The end vertices are dominated by their hubs, the interior vertex is
// dominated twice over.
func ExampleDomiRank() {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}} {
		if _, err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			log.Fatal(err)
		}
	}

	res, err := domirank.DomiRank(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Converged)
	for _, id := range []string{"0", "1", "2", "3", "4"} {
		fmt.Printf("%s %.2f\n", id, res.Scores[id])
	}
	// Output:
	// converged
	// 0 -0.54
	// 1 1.98
	// 2 -1.08
	// 3 1.98
	// 4 -0.54
}

// Supercharged competition is only valid in analytical mode, and comes
// with an advisory warning instead of an error.
func ExampleWithAnalytical() {
	g := core.NewGraph()
	if _, err := g.AddEdge("hub", "leaf", 0); err != nil {
		log.Fatal(err)
	}

	res, err := domirank.DomiRank(g, domirank.WithAnalytical(), domirank.WithSigma(1.5))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Converged)
	fmt.Println(len(res.Warnings))
	// Output:
	// not applicable
	// 1
}
