package main

import (
	"rolodex/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
