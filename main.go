package main

import "github.com/user/sitelog-check/cmd"

func main() {
	cmd.Execute()
}
