package provider

type Provider = any

// Speaker assigns a prebuilt voice to a named speaker in the input text.
// Names are passed through as given; uniqueness is the caller's concern.
type Speaker struct {
	Name  string
	Voice string
}

// Error is a fault reported by an upstream provider.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
