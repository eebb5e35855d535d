package message

const (
	InvalidUser    = "Invalid username/password."
	InvalidInput   = "Invalid input."
	UnknownField   = "Unknown field in payload."
	InvalidToken   = "Invalid or expired token."
	EnvErrFmt      = "environment variable is not set: %s"
	UserExists     = "User already exists."
	Registered     = "Registration successful."
	LoggedIn       = "Logged in successfully."
	LoggedOut      = "Logged out successfully. Discard your tokens."
	TokenRefreshed = "Token refreshed."
	NoteCreated    = "Note created."
	NoteUpdated    = "Note updated."
	NoteDeleted    = "Note deleted."
	NoteNotFound   = "Note not found."
	NotesFetched   = "Notes fetched."
	RequestAborted = "Request cancelled or timed out."
)
