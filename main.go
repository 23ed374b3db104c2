package main

import "inventory-levels/cmd"

func main() {
	cmd.Execute()
}
