// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad Op = "load configuration"

	// Cache operations
	OpCacheOpen Op = "open cache"
	OpCacheLoad Op = "load cached results"

	// Scan operations
	OpScan     Op = "scan"
	OpFileLoad Op = "load file"

	// Output
	OpReportWrite  Op = "write report"
	OpReportBrowse Op = "browse results"
	OpBundleWrite  Op = "write bundle"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
