package util

import (
	"errors"
	"strings"
)

var (
	ErrInvalidFileName  = errors.New("invalid file name")
	ErrInvalidNamespace = errors.New("invalid namespace")
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}

// SanitizeNamespace normalizes a slash separated key prefix such as "resumes/2024".
// Empty segments are dropped; traversal segments are rejected.
func SanitizeNamespace(ns string) (string, error) {
	var parts []string
	for _, part := range strings.Split(strings.ReplaceAll(ns, "\\", "/"), "/") {
		part = strings.TrimSpace(part)
		switch part {
		case "", ".":
			continue
		case "..":
			return "", ErrInvalidNamespace
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "", ErrInvalidNamespace
	}
	return strings.Join(parts, "/"), nil
}
