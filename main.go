package main

import "anmitsu/cmd"

func main() {
	cmd.Execute()
}
