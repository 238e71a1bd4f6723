package main

import "athlete-dashboard/cmd"

func main() {
	cmd.Execute()
}
