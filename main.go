package main

import "github.com/kendall-kelly/kendalls-kitchen/cmd"

func main() {
	cmd.Execute()
}
