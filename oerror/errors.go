package oerror

var (
	// ErrBusy is returned when a recording or replay is requested while another one is active.
	ErrBusy = New("a recording or replay is already in progress")
	// ErrTooFar is returned when the agent is too far from every point of a record to start replaying it.
	ErrTooFar = New("too far from the recorded path")
	// ErrEmptyRecord is returned when a record with no points is replayed.
	ErrEmptyRecord = New("record has no points")

	// ErrInvalidName is returned when a record name is empty, too long or has disallowed characters.
	ErrInvalidName = New("invalid record name")
	// ErrNameExists is returned when a record name is already taken in the store.
	ErrNameExists = New("record name already exists")
	// ErrNotFound is returned when a record could not be found in the store.
	ErrNotFound = New("record not found")
)
