package main

import (
	dotenvcmd "github.com/overlayenv/dotenv/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	dotenvcmd.SetVersionInfo(version, commit)
	dotenvcmd.Execute()
}
