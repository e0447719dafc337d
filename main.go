// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for caesarcipher.
//
// Usage:
//
//	go run . [flags] [message]
//	./caesarcipher -e -o 3 "Hello, World!"
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/caesarcipher/internal/logging"
	"github.com/toeirei/caesarcipher/ui/cli"
)

// main is the entrypoint for the caesarcipher CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		if cli.IsUsageError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
