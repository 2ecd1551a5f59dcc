package scheduling

import "fmt"

// ConfigError reports a configuration gap: input the generators refuse
// to produce output for, such as a non-positive duration or a malformed
// working-hours record.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scheduling config error: %s", e.Reason)
}

func newConfigError(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
