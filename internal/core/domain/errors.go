package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrProcessLaunch is returned when the metadata command is missing, cannot be started,
	// exits with a non-zero status, or its output cannot be read.
	ErrProcessLaunch = zerr.New("metadata command failed")

	// ErrOutputDecode is returned when the metadata output is not valid UTF-8 text.
	ErrOutputDecode = zerr.New("metadata output is not valid text")

	// ErrSchemaParse is returned when the metadata text does not match the expected schema.
	ErrSchemaParse = zerr.New("metadata does not match expected schema")

	// ErrPackageNotFound is returned when no package in the metadata has the requested name.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrNoTargetsSpecified is returned when a resolution is requested without package names.
	ErrNoTargetsSpecified = zerr.New("no package names specified")

	// ErrConfigInvalid is returned when the configuration file cannot be read or parsed.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrManifestRead is returned when a resolved manifest file cannot be read or parsed.
	ErrManifestRead = zerr.New("failed to read manifest")
)

// ResolveError is the failure type of a manifest resolution.
// Kind is one of ErrProcessLaunch, ErrOutputDecode, ErrSchemaParse or ErrPackageNotFound.
type ResolveError struct {
	Kind    error
	Package string
	Err     error
}

// NewResolveError builds a ResolveError of the given kind for the named package.
func NewResolveError(kind error, pkg string, cause error) *ResolveError {
	return &ResolveError{Kind: kind, Package: pkg, Err: cause}
}

func (e *ResolveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Package != "" {
		b.WriteString(" (package ")
		b.WriteString(e.Package)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is and errors.As.
func (e *ResolveError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Stage returns a short name of the pipeline stage that failed.
func (e *ResolveError) Stage() string {
	switch e.Kind {
	case ErrProcessLaunch:
		return "process launch"
	case ErrOutputDecode:
		return "output decode"
	case ErrSchemaParse:
		return "schema parse"
	case ErrPackageNotFound:
		return "package lookup"
	default:
		return "unknown"
	}
}
