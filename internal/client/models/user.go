// Package models defines the records exchanged with the user-directory backend.
package models

// User is a directory entry. The backend assigns ID; it is immutable and
// unique within one fetched snapshot.
type User struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// NewUser is the creation payload sent to the backend.
type NewUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
