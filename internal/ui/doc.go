// Package ui holds the terminal color themes shared by the CLI and the TUI.
// It respects the NO_COLOR convention and exposes small accessor functions so
// callers never hold a stale theme value.
package ui
