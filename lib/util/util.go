package util

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// returns true if the path exists and is a directory,
// false if it does not exist or is a file
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// prompts user for input on the console, hiding input
func PromptPassword(prompt string, args ...interface{}) (string, error) {
	fmt.Fprintf(os.Stderr, prompt, args...)
	d, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return string(d), err
}
