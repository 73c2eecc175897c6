package main

import "github.com/msomdec/board/internal/cli"

func main() {
	cli.Execute()
}
