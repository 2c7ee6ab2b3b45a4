// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "FOLIO_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// FOLIO_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Folio))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Folio))
}

// Logs resolves the directory for log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sources resolves the directory holding Lua content scripts.
func Sources() string {
	return ensureDir(filepath.Join(Config(), "sources"))
}

// Content resolves the directory for per-tag content cache files.
func Content() string {
	return ensureDir(filepath.Join(Cache(), "content"))
}

// Session resolves the file storing the splash screen session flag.
func Session() string {
	return filepath.Join(Cache(), "session.json")
}

// Inbox resolves the JSON lines file contact messages are appended to
// when no webhook is configured.
func Inbox() string {
	return filepath.Join(Config(), "inbox.jsonl")
}

// Temp resolves a directory for transient artifacts such as compiled Lua bytecode.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Folio))
}
