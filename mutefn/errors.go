package mutefn

import (
	"fmt"
)

// ConfigError reports an invalid parameter or an invalid mute-function
// definition. It is always fatal and always raised before any trace is
// written: a malformed mute definition cannot be safely defaulted.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{fmt.Sprintf(format, args...)}
}

// GeometryError reports a mute-function layout that cannot support a
// consistent bilinear neighborhood, or a location that cannot be mapped onto
// the survey grid. Silent fallback would corrupt amplitudes with no visible
// symptom, so these are fatal as well.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string { return e.msg }

func geometryErrorf(format string, args ...interface{}) error {
	return &GeometryError{fmt.Sprintf(format, args...)}
}

// NewGeometryError lets callers that place traces on the grid report
// unmappable locations under the same taxonomy as the store's own checks.
func NewGeometryError(format string, args ...interface{}) error {
	return geometryErrorf(format, args...)
}
