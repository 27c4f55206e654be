// Package processor contains the application logic behind the command line.
// It builds the language model client from configuration, owns the session
// with its custom words and feedback trainer, and prints results.
package processor
