package main

import (
	"os"

	"github.com/AlexZinkM/secp-wallet/cmd/walletgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
