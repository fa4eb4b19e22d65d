package main

import "github.com/rustyeddy/relstrength/internal/cli"

func main() {
	cli.Execute()
}
