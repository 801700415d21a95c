//go:build cli
// +build cli

package main

import (
	"kyuna.GO/cmd"
	"kyuna.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
