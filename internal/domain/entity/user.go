// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the sole aggregate of the system, representing one account row.
// PasswordHash holds the stored credential secret and must never leave the
// service layer; outward-facing views are built from the other fields only.
type User struct {
	ID           uint      // Store-generated numeric identifier, immutable once assigned.
	Name         string    // Display name. Non-empty.
	Email        string    // Login identifier. Non-empty, unique at the store level.
	PasswordHash string    // Hashed credential. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
