package models

import "encoding/json"

// User is the authenticated user's profile as returned by the identity
// endpoints. Token duplicates the session bearer token so the record can be
// persisted on its own.
type User struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Mobile    string  `json:"mobile"`
	Profile   string  `json:"profile"`
	Role      FlexInt `json:"role"`
	Status    FlexInt `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	Token     string  `json:"token"`
}

// UnmarshalJSON accepts "id" as a number or a numeric string, the same
// leniency Role and Status get.
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	aux := struct {
		*plain
		ID FlexInt `json:"id"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	u.ID = int64(aux.ID)
	return nil
}

// LoginMarker is the denormalized "who is logged in" record kept next to
// the full user record for cheap reads.
type LoginMarker struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// MarkerFor derives the login marker written together with u.
func MarkerFor(u User) LoginMarker {
	return LoginMarker{ID: u.ID, Name: u.Name, Email: u.Email, IsLoggedIn: true}
}

// Session is a point-in-time snapshot of the persisted authentication state.
// IsLoggedIn is true iff Token is non-empty; User may be set without a token.
type Session struct {
	Token      string
	User       *User
	IsLoggedIn bool
}
