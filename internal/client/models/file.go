// Package models holds the view types the CLI renders.
package models

import "fmt"

// FileInfo is a single row in a file listing.
type FileInfo struct {
	ID     uint64
	Name   string
	Status string
}

func (f FileInfo) String() string {
	return fmt.Sprintf("%d\t%s\t%s", f.ID, f.Name, f.Status)
}
