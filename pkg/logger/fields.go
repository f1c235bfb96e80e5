package logger

// Shared log field names. Keeping them in one place keeps log queries
// consistent across handlers, services and middleware.
const (
	// FieldTraceID request trace id
	FieldTraceID = "traceId"

	// FieldUser acting username
	FieldUser = "user"

	// FieldNoteID note identifier
	FieldNoteID = "noteId"

	// FieldOp operation name
	FieldOp = "op"

	// FieldDuration elapsed time
	FieldDuration = "duration"

	// FieldError error message
	FieldError = "error"
)
