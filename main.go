package main

import "github.com/alexiusacademia/acousticbem/cmd"

func main() {
	cmd.Execute()
}
