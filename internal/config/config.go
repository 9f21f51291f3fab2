package config

import (
	"github.com/xyproto/env/v2"
)

const (
	VerbosityVar = "IZINOIR_VERBOSITY"
	LogFileVar   = "IZINOIR_LOG_FILE"
	StrictVar    = "IZINOIR_STRICT"
	EmitVar      = "IZINOIR_EMIT"
	NoColorVar   = "NO_COLOR"
)

// Config holds the environment defaults shared by the binaries. Command
// line flags override these values.
type Config struct {
	Verbosity int
	LogFile   string
	Strict    bool
	Emit      string
	NoColor   bool
}

// Load re-reads the process environment on every call.
func Load() Config {
	env.Load()
	return Config{
		Verbosity: env.Int(VerbosityVar, 0),
		LogFile:   env.Str(LogFileVar),
		Strict:    env.Bool(StrictVar),
		Emit:      env.Str(EmitVar, "noir"),
		NoColor:   env.Bool(NoColorVar),
	}
}

// LogPath returns the log file for commonlog.Configure, or nil for stderr.
func (c Config) LogPath() *string {
	if c.LogFile == "" {
		return nil
	}
	path := c.LogFile
	return &path
}
