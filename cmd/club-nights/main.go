package main

import "github.com/pfrederiksen/club-nights/internal/cli"

func main() {
	cli.Execute()
}
