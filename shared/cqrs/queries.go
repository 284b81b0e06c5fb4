package cqrs

// ---------- Account queries ----------

// GetAccountQuery fetches a single account by ID.
type GetAccountQuery struct {
	AccountID string
}

// ---------- Message queries ----------

// GetMessageQuery fetches a single message by ID.
type GetMessageQuery struct {
	MessageID string
}

// ListMessagesByAccountQuery fetches every message posted by one account.
type ListMessagesByAccountQuery struct {
	AccountID string
}
