package models

// Account is a registered identity. Password holds either the plaintext or a
// bcrypt hash depending on the configured hasher; it is never serialised.
type Account struct {
	ID       string `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Message is a short text post attributed to an Account.
type Message struct {
	ID       string `json:"message_id"`
	Text     string `json:"message_text"`
	PostedBy string `json:"posted_by"`
}
