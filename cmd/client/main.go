package main

import "junebug/cmd/client/cmd"

func main() {
	cmd.Execute()
}
