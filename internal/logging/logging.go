// Package logging routes the standard logger to a rotating file. The TUI
// owns the terminal, so nothing may log to stdout once it starts.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the default logger at a rotating log file under the user
// cache directory and returns the file path.
func Setup() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "magicstudio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "magicstudio.log")
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	})
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return path, nil
}
