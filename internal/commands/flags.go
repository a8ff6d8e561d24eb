package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fieldsend/tend/internal/core/config"
	"github.com/fieldsend/tend/internal/data/stores"
)

// nowFn is swapped out by tests to pin the clock.
var nowFn = time.Now

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is the task store, opened and loaded in the Before hook
	Store *stores.TaskStore

	// StoreWarning carries a non-fatal load problem (e.g. a corrupt data
	// file that was replaced with the seed list) into the TUI status line.
	StoreWarning string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tend", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tend")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tend/tend.log
// On Linux: $XDG_STATE_HOME/tend/tend.log (defaults to ~/.local/state/tend/tend.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tend", "tend.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tend", "tend.log")
	}

	return filepath.Join(home, ".local", "state", "tend", "tend.log")
}
