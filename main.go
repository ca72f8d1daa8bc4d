// Package main is the entry point of the cnat CLI.
package main

import "github.com/Gnarus-G/cnat/cmd"

func main() {
	cmd.Execute()
}
