package rop

import (
	"strings"

	"github.com/ib-77/results/pkg/rop/errs"
)

// IsNilOrEmpty reports whether s is nil or points to an empty string.
func IsNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// IsNilOrBlank reports whether s is nil or holds only white space.
func IsNilOrBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// NotEmpty succeeds with s unless it is empty.
func NotEmpty(s string) Result[string] {
	if s == "" {
		return Fail[string](errs.Empty())
	}
	return Success(s)
}

// NotBlank succeeds with s unless it holds only white space.
func NotBlank(s string) Result[string] {
	if strings.TrimSpace(s) == "" {
		return Fail[string](errs.Empty())
	}
	return Success(s)
}
