// Command stellar-donate runs the donation API and its wallet tooling.
//
// Usage:
//
//	stellar-donate serve
//	stellar-donate wallet init
//	stellar-donate donate <destination> --asset XLM
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
