package main

import (
	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/internal/cli"
)

func main() {
	cli.Execute()
}
