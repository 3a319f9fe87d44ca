package ast

import "errors"

// printer is installed by the writer package so that Print can render with
// default settings without this package importing the writer.
var printer func(Node) (string, error)

// SetPrinter installs the default rendering function used by Print. The
// writer package calls this from its init.
func SetPrinter(fn func(Node) (string, error)) {
	printer = fn
}

// Print renders n to source text using the default writer settings:
// standard rule mapping, default formatting policy, and the most recent
// supported target version. Import the writer package (directly or through
// the module root) to make it available.
func Print(n Node) (string, error) {
	if printer == nil {
		return "", errors.New("no printer installed: import the writer package")
	}
	return printer(n)
}
