package main

import "github.com/mcoot/connectn/internal/cli"

func main() {
	cli.Execute()
}
