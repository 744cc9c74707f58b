// Package models defines the data types shared by the accountkeeper
// client layers: credentials, the authenticated session, the decoded
// user identity, and managed account records.
package models

// Credentials is a transient email/password pair. It is constructed by
// the UI layer, consumed once per register/login call, and never
// persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the token pair returned by the IAM backend on successful
// login or registration. Only the access token is persisted locally;
// the refresh token is surfaced to the caller but not stored.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserIdentity holds the user-descriptive claims decoded from the
// access token payload. It is a display hint only: the token signature
// is never verified on the client, so these fields must not gate any
// sensitive operation.
type UserIdentity struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Subject string `json:"sub,omitempty"`
}

// AccountStatus is the server-side standing of a managed account.
type AccountStatus string

const (
	StatusNormal AccountStatus = "normal"
	StatusBanned AccountStatus = "banned"
)

// Account is a managed social account record. ID is server-assigned;
// DisplayIndex is a client-computed 1-based position assigned at fetch
// time and recomputed whenever the collection changes.
type Account struct {
	ID           string        `json:"_id"`
	DisplayIndex int           `json:"index"`
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	Status       AccountStatus `json:"status"`
}

// AccountDraft is the user-entered form for a new account.
type AccountDraft struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
