package cqrs

type RegisterAccountCommand struct {
	Username string
	Password string
}

type PostMessageCommand struct {
	Text     string
	PostedBy string
}

type UpdateMessageCommand struct {
	MessageID string
	Text      string
}

type DeleteMessageCommand struct {
	MessageID string
}

// AuthenticateCommand is handled by the query side: it never mutates state.
type AuthenticateCommand struct {
	Username string
	Password string
}
