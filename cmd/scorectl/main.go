// Package main is the entry point for the scorectl CLI tool, which prints
// standings and the hall of fame straight from the club's score sheets.
package main

import "github.com/helset/gamenight/internal/cli"

func main() {
	cli.Execute()
}
