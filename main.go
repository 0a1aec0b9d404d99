package main

import "github.com/notargets/gaussquad/cmd"

func main() {
	cmd.Execute()
}
