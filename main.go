package main

import "cached-inventory/cmd"

func main() {
	cmd.Execute()
}
