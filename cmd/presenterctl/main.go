package main

import "github.com/rhofkens/AI-presenter/internal/cli"

func main() {
	cli.Execute()
}
