package domain

import "path/filepath"

const (
	// DeciderDirName is the name of the internal workspace directory.
	DeciderDirName = ".decider"

	// StoreDirName is the name of the plan store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "decider.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the plan store.
// It joins .decider and store.
func DefaultStorePath() string {
	return filepath.Join(DeciderDirName, StoreDirName)
}
