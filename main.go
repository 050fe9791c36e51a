package main

import "github.com/mass-rename/regexrename/cmd"

func main() {
	cmd.Execute()
}
