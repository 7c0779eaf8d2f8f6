// Package main is the entry point for the recon CLI.
package main

import "recon.dev/pkg/recon/cmd"

func main() {
	cmd.Execute()
}
