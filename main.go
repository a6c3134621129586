// Package main is the entry point for the shadekey CLI.
package main

import "shadekey.dev/pkg/shadekey/cmd"

func main() {
	cmd.Execute()
}
