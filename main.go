package main

import "record-reconciler/cmd"

func main() {
	cmd.Execute()
}
