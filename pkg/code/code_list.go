package code

import "net/http"

var (
	Success = NewSuss(0, "Success")

	SussUserCreated  = NewSuss(200101, "User created successfully.")
	SussUserLoggedIn = NewSuss(200102, "User logged in successfully.")
	SussNoteCreated  = NewSuss(200201, "Note created successfully.")
	SussNoteFetched  = NewSuss(200202, "Note(s) fetched successfully.")
	SussNoteUpdated  = NewSuss(200203, "Note updated successfully.")
	SussNoteDeleted  = NewSuss(200204, "Note deleted successfully.")
	SussNoteShared   = NewSuss(200205, "Note shared successfully.")
)

var (
	ErrorInvalidParams   = NewError(100001, http.StatusBadRequest, "Invalid request data.")
	ErrorTooManyRequests = NewError(100002, http.StatusTooManyRequests, "Too many requests.")
	ErrorServerInternal  = NewError(100003, http.StatusInternalServerError, "Something went wrong, please try again.")
	ErrorRequestTimeout  = NewError(100004, http.StatusRequestTimeout, "Request timed out.")

	ErrorUnauthorizedAccess   = NewError(200101, http.StatusUnauthorized, "Unauthorized access.")
	ErrorIncorrectCredentials = NewError(200102, http.StatusUnauthorized, "Incorrect username or password.")
	ErrorUserAlreadyExists    = NewError(200103, http.StatusBadRequest, "User already exists.")

	ErrorDocumentNotExists   = NewError(200201, http.StatusBadRequest, "Document does not exists.")
	ErrorForbiddenAccess     = NewError(200202, http.StatusForbidden, "Insufficient permissions.")
	ErrorCannotShareWithSelf = NewError(200203, http.StatusBadRequest, "A note cannot be shared with yourself.")
	ErrorAlreadyShared       = NewError(200204, http.StatusBadRequest, "Note is already shared with this user.")

	ErrorDBQuery = NewError(200301, http.StatusInternalServerError, "Storage unavailable.")
)
