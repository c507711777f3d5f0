// Package main is the entry point for the cvx CLI tool.
package main

import (
	"github.com/hargabyte/cvx/internal/cmd"
)

func main() {
	cmd.Execute()
}
