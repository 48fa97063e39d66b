package main

import "github.com/tessro/qrocodile/internal/cli"

func main() {
	cli.Execute()
}
