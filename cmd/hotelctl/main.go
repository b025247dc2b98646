package main

import "hotelbooking/internal/cli"

func main() {
	cli.Execute()
}
