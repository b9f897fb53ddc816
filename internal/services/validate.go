package services

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// field pairs a JSON field name with its submitted value.
type field struct {
	name  string
	value string
}

// requireFields records a "<name> is required" error for every blank field.
func requireFields(errs map[string]string, fields ...field) {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs[f.name] = f.name + " is required"
		}
	}
}

func checkEmail(errs map[string]string, name, value string) {
	if _, missing := errs[name]; missing {
		return
	}
	if !emailRegex.MatchString(strings.TrimSpace(value)) {
		errs[name] = "Invalid email format"
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
