package exitcode

// Process exit codes for the eircode CLI.
const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2 // at least one input was not a valid eircode
	DBConnError     = 3
	CopyError       = 4
	LoadError       = 5
)
