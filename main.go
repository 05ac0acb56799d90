package main

import "github.com/cameronp98/frothy/cmd"

func main() {
	cmd.Execute()
}
