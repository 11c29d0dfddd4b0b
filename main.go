// Package main is the entry point of the respec command.
package main

import "github.com/mouse-blink/respec/cmd"

func main() {
	cmd.Execute()
}
