// Package domain contains core concepts of the mock chat system.
// This file defines User entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// User is a roster entry. The session user is a regular User whose id is
// minted at login; seed users carry fixed ids for the process lifetime.
type User struct {
	ID        string
	Name      string
	Age       int
	Country   string
	City      string
	Gender    Gender
	AvatarURL string
	Bio       string
	IsOnline  bool
}
