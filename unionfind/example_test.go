package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/unionfind"
)

// ExampleDisjointSet groups friends into circles.
func ExampleDisjointSet() {
	d := unionfind.New("ann", "bob", "cid", "dee")
	d.Union("ann", "bob")
	d.Union("cid", "dee")
	fmt.Println(d.Count(), d.Connected("ann", "dee"))

	fmt.Println(d.Union("bob", "dee"), d.Union("ann", "cid"))
	fmt.Println(d.Count())

	// Output:
	// 2 false
	// true false
	// 1
}
