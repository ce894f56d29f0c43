package main

import "github.com/iefdev/manpageblog/cmd"

func main() {
	cmd.Execute()
}
