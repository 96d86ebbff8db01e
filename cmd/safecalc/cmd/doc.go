// Package cmd implements the safecalc command tree.
package cmd
