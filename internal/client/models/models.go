// Package models defines the record shapes shared by the state containers,
// the persistent store and the content API.
package models

import "strings"

// IdentifierType classifies what kind of identifier a user logged in with.
type IdentifierType string

const (
	IdentifierEmail IdentifierType = "email"
	IdentifierPhone IdentifierType = "phone"
)

// SessionUser identifies the authenticated user.
type SessionUser struct {
	// ID is a generated opaque identifier, unique per login.
	ID string `json:"id"`
	// Identifier is the email or phone string supplied at login.
	Identifier string         `json:"identifier"`
	Type       IdentifierType `json:"type"`
}

// SessionRecord is the full session state, both in memory and as the JSON
// blob mirrored into the persistent store.
type SessionRecord struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *SessionUser `json:"user,omitempty"`
	Token           string       `json:"token,omitempty"`
}

// Valid reports whether the record satisfies the session invariant:
// an authenticated record must carry a non-empty user and token.
func (r SessionRecord) Valid() bool {
	if !r.IsAuthenticated {
		return true
	}
	return r.User != nil && r.User.ID != "" && r.User.Identifier != "" && r.Token != ""
}

// ProfileRecord holds the nine user-editable profile fields. All fields are
// independently optional; empty string means unset.
type ProfileRecord struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Age         string `json:"age"`
	DateOfBirth string `json:"dateOfBirth"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Website     string `json:"website"`
	Interests   string `json:"interests"`
}

// FieldCount is the number of profile fields that enter the completeness
// percentage. Every field weighs the same.
const FieldCount = 9

// FilledCount returns how many fields are non-blank (non-empty after
// trimming whitespace).
func (r ProfileRecord) FilledCount() int {
	n := 0
	for _, v := range []string{
		r.Name, r.Bio, r.Age, r.DateOfBirth, r.Location,
		r.Phone, r.Company, r.Website, r.Interests,
	} {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// Post is a feed entry as served by the content API.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment belongs to a single post.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// User is an author record from the content API, used to caption posts.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
