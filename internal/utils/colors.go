package utils

// ANSI escape sequences for terminal output.
const (
	resetColor  = "\033[0m"
	redColor    = "\033[31m"
	greenColor  = "\033[32m"
	yellowColor = "\033[33m"
	blueColor   = "\033[34m"
	cyanColor   = "\033[36m"
)

func colored(text, color string) string {
	return color + text + resetColor
}

// Info returns blue-colored text for progress messages
func Info(text string) string { return colored(text, blueColor) }

// Success returns green-colored text for completed steps
func Success(text string) string { return colored(text, greenColor) }

// Warning returns yellow-colored text
func Warning(text string) string { return colored(text, yellowColor) }

// Error returns red-colored text
func Error(text string) string { return colored(text, redColor) }

// Debug returns cyan-colored text
func Debug(text string) string { return colored(text, cyanColor) }
