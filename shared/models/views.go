package models

// AccountView is the projection of an account returned over the API.
// It never exposes Password.
type AccountView struct {
	ID       string `json:"account_id"`
	Username string `json:"username"`
}

// ToView strips the credential from an account.
func (a Account) ToView() AccountView {
	return AccountView{ID: a.ID, Username: a.Username}
}
