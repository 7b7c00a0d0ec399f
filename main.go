package main

import "github.com/draftops/mflgate/cmd"

func main() {
	cmd.Execute()
}
