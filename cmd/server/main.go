package main

import "junebug/cmd/server/cmd"

func main() {
	cmd.Execute()
}
