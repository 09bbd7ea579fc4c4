// twokey loads newline delimited (key1, key2, value) records into a two key map
// and answers lookups on them.
package main

import (
	"os"
)

func main() {
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}
