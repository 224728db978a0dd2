package partials

import (
	"strconv"
	"strings"
	"unicode"
)

// NamingConvention maps a caller-facing partial name to the identifier
// passed to the template engine.
type NamingConvention int

// Supported conventions.
const (
	// ConventionUnderscorePrefixed prepends "_" to the base segment of the
	// name ("header" -> "_header", "shared/header" -> "shared/_header"),
	// the classic partial file convention. This is the default.
	ConventionUnderscorePrefixed NamingConvention = iota

	// ConventionDirect passes the name through unchanged.
	ConventionDirect
)

// String implements fmt.Stringer.
func (c NamingConvention) String() string {
	switch c {
	case ConventionUnderscorePrefixed:
		return "underscore-prefixed"
	case ConventionDirect:
		return "direct"
	default:
		return "unknown"
	}
}

func (c NamingConvention) apply(name string) string {
	if c == ConventionDirect {
		return name
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[:i+1] + "_" + name[i+1:]
	}
	return "_" + name
}

// baseName returns the last slash-separated segment of name. It is the
// variable name a Value argument is bound under.
func baseName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// validateName checks that name is non-empty and every slash-separated
// segment is identifier-shaped: a leading letter or underscore followed
// by letters, digits, underscores, or hyphens.
func validateName(name string) error {
	if name == "" {
		return &NameError{Name: name, Reason: "empty name", Err: ErrInvalidTemplateName}
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" {
			return &NameError{Name: name, Reason: "empty path segment", Err: ErrInvalidTemplateName}
		}
		for i, r := range seg {
			if i == 0 {
				if !unicode.IsLetter(r) && r != '_' {
					return &NameError{Name: name, Reason: "segment must start with a letter or underscore", Err: ErrInvalidTemplateName}
				}
				continue
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
				return &NameError{Name: name, Reason: "invalid character " + strconv.QuoteRune(r), Err: ErrInvalidTemplateName}
			}
		}
	}
	return nil
}
