package main

import "pharmacist/cmd"

func main() {
	cmd.Execute()
}
