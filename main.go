package main

import "github.com/thanhnguyen2187/asset-savior/cli"

func main() {
	cli.Start()
}
