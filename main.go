package main

import (
	"os"

	"github.com/bnema/cronparse/cmd"
	buildinfo "github.com/bnema/cronparse/pkg/version"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := cmd.Execute(buildinfo.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	})
	if err != nil {
		os.Exit(1)
	}
}
