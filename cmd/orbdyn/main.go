package main

import "orbdyn/cmd/orbdyn/cmd"

func main() {
	cmd.Execute()
}
