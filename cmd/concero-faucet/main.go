package main

import "github.com/Giri-Aayush/concero-faucet/pkg/cli/commands"

func main() {
	commands.Execute()
}
