package main

import (
	"os"

	"gitbranchname.dev/git-branch-name/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version, os.Args[1:], cli.DefaultHost(), os.Stdout, os.Stderr))
}
