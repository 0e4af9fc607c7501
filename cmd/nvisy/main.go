package main

import (
	"os"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
