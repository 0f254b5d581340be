package config

import "strings"

// ANSI foreground codes by name. The empty name means no color.
var colors = map[string]string{
	"":       "",
	"none":   "",
	"black":  "30",
	"red":    "31",
	"green":  "32",
	"yellow": "33",
	"blue":   "34",
	"purple": "35",
	"cyan":   "36",
	"white":  "37",
}

// Paint wraps s in the escape sequences of the named color.
func Paint(color, s string) string {
	code := colors[strings.ToLower(color)]
	if code == "" {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
