package fsio

import (
	"os"
)

// Hooks for filesystem operations (overridable in tests)
var (
	Open           = os.Open
	OpenFile       = os.OpenFile
	ReadFile       = os.ReadFile
	WriteFile      = os.WriteFile
	StatFile       = os.Stat
	Remove         = os.Remove
	RemoveAll      = os.RemoveAll
	Rename         = os.Rename
	CreateTempFile = os.CreateTemp
	MkdirAll       = os.MkdirAll
	MkdirTemp      = os.MkdirTemp
	Chtimes        = os.Chtimes
)

var Exists = func(path string) bool {
	_, err := StatFile(path)
	return err == nil
}

var IsDir = func(path string) bool {
	fi, err := StatFile(path)
	return err == nil && fi.IsDir()
}
