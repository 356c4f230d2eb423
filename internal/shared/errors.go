package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrStorageRead  = fmt.Errorf("failed to read stored data")
	ErrStorageWrite = fmt.Errorf("failed to write stored data")
	ErrNoSnapshots  = fmt.Errorf("no stored snapshots")

	// Import/export errors. Import failures surface directly to the user, so
	// the message is in the application language.
	ErrInvalidImport = fmt.Errorf("arquivo inválido")

	// Domain lookup errors
	ErrScheduleNotFound = fmt.Errorf("schedule not found")
	ErrSpeakerNotFound  = fmt.Errorf("speaker not found")
	ErrOutlineNotFound  = fmt.Errorf("outline not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
