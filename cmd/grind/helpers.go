package main

import (
	"github.com/fatih/color"

	"github.com/tab/holy-grind/pkg/i18n"
)

var messages = i18n.Default()

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
