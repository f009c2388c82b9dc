package main

import "github.com/alexiusacademia/gofastga/cmd"

func main() {
	cmd.Execute()
}
