// Package cli parses command-line arguments and environment defaults for the
// modpoet command, validates them, and maps usage problems to exit codes.
package cli
