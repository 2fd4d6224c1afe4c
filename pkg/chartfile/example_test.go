package chartfile_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chartfile"
)

func ExampleDecode() {
	data := []byte(`
title = "Sales"

[[series]]
kind = "line"
points = [[0, 1], [1, 3], [2, 2]]
`)
	c, err := chartfile.Decode(data, chartfile.FormatTOML)
	if err != nil {
		fmt.Println(err)
		return
	}
	w, h := c.Size()
	fmt.Println(c.Title, len(c.Series), w, h)
	// Output: Sales 1 800 500
}

func ExampleSniff() {
	fmt.Println(chartfile.Sniff([]byte(`  {"title": "Sales"}`)))
	fmt.Println(chartfile.Sniff([]byte(`title = "Sales"`)))
	// Output:
	// json
	// toml
}
