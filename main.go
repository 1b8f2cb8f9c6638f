package main

import "github.com/KaramelBytes/medsum-cli/cmd"

func main() {
	cmd.Execute()
}
