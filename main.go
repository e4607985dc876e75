package main

import "github.com/jsphweid/fifths/cmd"

func main() {
	cmd.Execute()
}
