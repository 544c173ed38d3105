package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a member record. Email is the directory key, lowercased at
// registration and immutable afterwards.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"-"` // Never expose the credential in JSON
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	EmailPrivate bool      `json:"email_private"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
