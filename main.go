package main

import "github.com/alexiusacademia/gocivil/cmd"

func main() {
	cmd.Execute()
}
