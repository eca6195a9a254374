package main

import "interlinear/internal/cli"

func main() {
	cli.Execute()
}
