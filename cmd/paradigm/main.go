package main

import "github.com/aalvaropc/paradigm/internal/cli"

func main() {
	cli.Execute()
}
