// Package logtail reads the tail of the nasaimager log file for the
// `nasaimager logs` command.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// O(maxLines) no matter how large the log grows. A missing file is not an
// error; it simply yields no lines.
//
// Parse understands the charmbracelet/log text layout written by package
// logging:
//
//	2026-10-17T09:12:01Z INFO search finished query="apollo 11" results=2
//
// Filter drops lines below a minimum level and ColorizeLine highlights the
// timestamp, level and keys with fatih/color. Lines that do not match the
// layout pass through untouched.
package logtail
