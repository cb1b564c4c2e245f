// Package apperrors centralizes the application's error types and process
// exit codes. It provides structured errors for configuration and benchmark
// failures so callers can map outcomes to exit statuses without string
// matching.
package apperrors
