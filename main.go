package main

import "github.com/alexiusacademia/gorcx/cmd"

func main() {
	cmd.Execute()
}
