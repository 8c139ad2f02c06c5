package form

import "fmt"

// ConvertError is the fail-fast error of the value converter. Conversion
// happens at the point of actually building a call payload, so the first
// defect aborts the whole build.
type ConvertError struct {
	Path   string // value path ("" for the top-level value)
	Reason string
}

func (e *ConvertError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

func errf(path, format string, args ...any) *ConvertError {
	return &ConvertError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
