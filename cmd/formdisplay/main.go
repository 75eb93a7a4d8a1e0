// Command formdisplay inspects and rearranges form display documents from
// the terminal: print the arrangement tree, create and move groups, reorder
// fields, toggle visibility, and write the result back to a config
// directory.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
