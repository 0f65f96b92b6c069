package observability

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const envPrefix = "CUPLEX_LOG_"

// LogConfig describes where and how node and worker events are logged.
type LogConfig struct {
	Level       string // debug, info, warn, error
	Format      string // console or json
	Outputs     []string
	Development bool
	Rotation    RotationConfig
}

// RotationConfig applies to file outputs only.
type RotationConfig struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:   "info",
		Format:  "console",
		Outputs: []string{"stderr"},
	}
}

// LoadLogConfig starts from DefaultLogConfig and applies CUPLEX_LOG_*
// variables from the environment.
func LoadLogConfig() (LogConfig, error) {
	return loadLogConfig(os.LookupEnv)
}

func loadLogConfig(lookup func(string) (string, bool)) (LogConfig, error) {
	c := DefaultLogConfig()
	var err error

	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(name string, dst *bool) {
		v, ok := lookup(envPrefix + name)
		if !ok || err != nil {
			return
		}
		b, perr := strconv.ParseBool(strings.TrimSpace(v))
		if perr != nil {
			err = fmt.Errorf("observability: %s%s: %w", envPrefix, name, perr)
			return
		}
		*dst = b
	}
	integer := func(name string, dst *int) {
		v, ok := lookup(envPrefix + name)
		if !ok || err != nil {
			return
		}
		n, perr := strconv.Atoi(strings.TrimSpace(v))
		if perr != nil {
			err = fmt.Errorf("observability: %s%s: %w", envPrefix, name, perr)
			return
		}
		*dst = n
	}

	str("LEVEL", &c.Level)
	str("FORMAT", &c.Format)
	if v, ok := lookup(envPrefix + "OUTPUTS"); ok {
		c.Outputs = nil
		for _, out := range strings.Split(v, ",") {
			if out = strings.TrimSpace(out); out != "" {
				c.Outputs = append(c.Outputs, out)
			}
		}
	}
	boolean("DEVELOPMENT", &c.Development)
	boolean("ROTATION_ENABLE", &c.Rotation.Enable)
	str("ROTATION_FILENAME", &c.Rotation.Filename)
	integer("ROTATION_MAX_SIZE_MB", &c.Rotation.MaxSizeMB)
	integer("ROTATION_MAX_BACKUPS", &c.Rotation.MaxBackups)
	integer("ROTATION_MAX_AGE_DAYS", &c.Rotation.MaxAgeDays)
	boolean("ROTATION_COMPRESS", &c.Rotation.Compress)

	return c, err
}
