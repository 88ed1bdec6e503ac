// main.go - Entry point for the shop admin backend

package main

import "go-shop-admin/commands"

func main() {
	commands.Execute()
}
