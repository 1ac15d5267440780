// Command showcase exercises every package of the module and prints the
// results.
//
//	showcase run [--section name ...]
//	showcase shape --file shapes.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewApp().RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
