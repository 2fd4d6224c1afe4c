package render_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/render"
)

func ExampleParseColor() {
	for _, s := range []string{"steelblue", "#f00", "#ff000080", "none"} {
		c, err := render.ParseColor(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(c)
	}
	// Output:
	// #4682b4
	// #ff0000
	// #ff000080
	// none
}
