// Package models defines plain data structures shared across the
// program.
package models

import "fmt"

type BuildInformation struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInformation) VersionString() string {
	return fmt.Sprintf("ddnsc %s (commit %s built on %s)", b.Version, b.Commit, b.Date)
}
