// Package utils provides shared utility functions for the Pounamu application.
//
// # I/O Utilities
//
// Functions for reading from stdin and other I/O operations:
//   - ReadStdin: reads all piped data from standard input
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - IsTerminal: checks if a file refers to an interactive terminal
//   - PromptLine: prompts for and reads a single line of input
package utils
