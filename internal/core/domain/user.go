package domain

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

type User struct {
	ID           string
	Email        string
	Username     string
	DisplayName  string
	Bio          string
	Avatar       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the denormalized author shape attached to tweets so the
// read path never needs a second lookup per item.
type UserSummary struct {
	ID          string
	Username    string
	DisplayName string
	Avatar      string
}

// NewUser validates the invariants and mints the identity. The uniqueness
// of email and username is ultimately enforced by the store; validation
// here only covers shape.
func NewUser(email, username, displayName, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	username = strings.TrimSpace(username)
	if !usernameRe.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	displayName = strings.TrimSpace(displayName)
	if err := validateDisplayName(displayName); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}
}

func (u *User) SetDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if err := validateDisplayName(name); err != nil {
		return err
	}
	u.DisplayName = name
	u.touch()
	return nil
}

func (u *User) SetBio(bio string) error {
	if utf8.RuneCountInString(bio) > 500 {
		return ErrInvalidBio
	}
	u.Bio = bio
	u.touch()
	return nil
}

func (u *User) SetAvatar(rawURL string) error {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || parsed.Host == "" {
		return ErrInvalidAvatar
	}
	u.Avatar = rawURL
	u.touch()
	return nil
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}

func validateDisplayName(name string) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return ErrInvalidDisplayName
	}
	return nil
}
