package validate

import "strings"

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func InRange(value, min, max int) bool {
	return value >= min && value <= max
}
