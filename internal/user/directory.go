package user

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidInput       = errors.New("name, email, and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ProfileUpdate is a partial edit of a user's profile fields.
//
// Name and Bio are pointers so a submission can distinguish "field absent"
// from "field present but blank". The two are not treated alike: a blank
// Name falls back to the current value, while a blank Bio clears it.
// EmailPrivate is not optional; it is recomputed from the submitted value
// on every update, so omitting the checkbox turns privacy off.
type ProfileUpdate struct {
	Name         *string
	Bio          *string
	EmailPrivate bool
}

// Directory is the in-memory user store, keyed by normalized email.
//
// All access goes through one RWMutex. Update performs its read-modify-write
// entirely under the write lock, which keeps profile edits atomic with
// respect to each other (last write wins, wholesale).
type Directory struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[string]*User)}
}

// NormalizeEmail lowercases an email address for use as a directory key.
// Normalization is idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user record.
// Returns ErrInvalidInput if any field is blank after trimming, and
// ErrDuplicateEmail if the normalized email is already taken.
func (d *Directory) Register(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	// Blank-after-trim rejects registration, but the stored credential is
	// the password exactly as submitted.
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidInput
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[email]; exists {
		return nil, ErrDuplicateEmail
	}

	now := time.Now()
	u := &User{
		ID:           uuid.New(),
		Email:        email,
		Password:     password,
		Name:         name,
		Bio:          "",
		EmailPrivate: false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	d.users[email] = u

	return copyUser(u), nil
}

// GetByEmail retrieves a user by email (normalized before lookup)
func (d *Directory) GetByEmail(email string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}

	return copyUser(u), nil
}

// Authenticate checks credentials by exact match on the stored password.
// Unknown email and wrong password both return ErrInvalidCredentials;
// callers must not be able to tell which one occurred.
func (d *Directory) Authenticate(email, password string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[NormalizeEmail(email)]
	if !ok || u.Password != password {
		return nil, ErrInvalidCredentials
	}

	return copyUser(u), nil
}

// Update applies a partial profile edit to the record for email.
//
// Field semantics (observable behavior, kept exactly):
//   - Name: absent or blank keeps the current value.
//   - Bio: absent keeps the current value; present-but-blank clears it.
//   - EmailPrivate: always set from the submission.
//
// The caller is responsible for only updating the identity it
// authenticated; ErrNotFound here means the session referenced a record
// that no longer exists.
func (d *Directory) Update(email string, upd ProfileUpdate) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != nil && *upd.Name != "" {
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	u.EmailPrivate = upd.EmailPrivate
	u.UpdatedAt = time.Now()

	return copyUser(u), nil
}

// Exists reports whether an identity resolves to a record. The session
// gate uses this to reject claims for users that no longer exist.
func (d *Directory) Exists(email string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.users[NormalizeEmail(email)]
	return ok
}

// Count reports the number of registered users
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.users)
}

// copyUser returns a detached copy so callers never hold a pointer into the map
func copyUser(u *User) *User {
	c := *u
	return &c
}
