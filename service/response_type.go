package service

// ResponseType enumerates the types of service responses
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response
	Conflict

	// LimitReached response
	LimitReached
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"conflict",
	"limit-reached",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
