package main

import (
	"github.com/AzielCF/az-drive/cmd"
)

func main() {
	cmd.Execute()
}
