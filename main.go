package main

import "nathanbeddoewebdev/swatch/cmd"

func main() {
	cmd.Execute()
}
