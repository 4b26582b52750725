package main

import "github.com/alexiusacademia/gorcm/cmd"

func main() {
	cmd.Execute()
}
