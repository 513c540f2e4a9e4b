package main

import "github.com/nfrund/waypoint/cmd/navctl/cmd"

func main() {
	cmd.Execute()
}
