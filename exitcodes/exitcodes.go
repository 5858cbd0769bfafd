// Package exitcodes defines the standard exit codes used by test262-reporter.
package exitcodes

// Exit code constants used by test262-reporter
// These constants define the exit codes that the application uses to indicate
// various states when it exits:
//
// * Success (0): Used when the report completed, regardless of how many tests failed inside the groups
// * NoGroups (1): Used when the tracking document yields zero groups to run
// * RuntimeErr (2): Used for runtime errors such as bad configuration or unreadable input
const (
	Success    = 0 // Report completed
	NoGroups   = 1 // Tracking document yielded no groups
	RuntimeErr = 2 // Runtime or configuration errors
)
