package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "axtask"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the user-level build defaults file.
//
// Fields set here apply to every project the user builds, below the
// project's own config file in precedence.
//
//	Linux:   ~/.config/axtask/config.toml
//	macOS:   ~/Library/Application Support/axtask/config.toml
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.toml")
}
