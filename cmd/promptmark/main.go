package main

import "promptmark/internal/cli"

func main() {
	cli.Execute()
}
