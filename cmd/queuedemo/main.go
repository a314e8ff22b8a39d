// Command queuedemo exercises the queue package from the command line.
//
// Without arguments it replays the primes walkthrough:
//
//	queuedemo
//
// The run subcommand enqueues its arguments into a queue built from a config
// file and flags, prints the queue, then drains it:
//
//	queuedemo run --capacity 2 a b c
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
