package main

import "panelinput/internal/cli"

func main() {
	cli.Execute()
}
