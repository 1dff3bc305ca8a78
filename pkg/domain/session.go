package domain

// Session is the client's representation of an authenticated user: the user
// object plus the bearer token the backend issued for it.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
