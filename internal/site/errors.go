// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by errors.Is for every *ValidationError.
var ErrValidation = errors.New("site config validation failed")

// Issue describes a single problem found in a site configuration.
type Issue struct {
	Path    string // dotted location, e.g. themeConfig.nav[1].link
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// ValidationError is returned when a configuration breaks a structural rule.
// It carries every issue found, not only the first one.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Issues[0])
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %d issues: %s", ErrValidation, len(e.Issues), strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) add(path, format string, args ...any) {
	e.Issues = append(e.Issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}
