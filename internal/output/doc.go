// Package output prints lifpdoc results and maps failures to exit statuses.
//
// A run ends in one of two ways. On success the command hands a RunReport
// (or, for list, ModuleRows) to the Printer, which writes "Wrote" lines and
// a record total, or the same data as JSON under --json. On failure it
// returns an ExitError:
//
//	NewUsageError   // exit 1: missing or unknown mode, with the usage line
//	ConfigError     // exit 1: unusable config file, env file or source glob
//	IOError         // exit 2: unreadable source, unwritable artifact
//
// Printer.Error writes that error once, to stderr in human mode and as
// {"error", "code", "usage"} on stdout in JSON mode. Styling uses lipgloss
// and follows --color; auto styles only terminal output.
package output
