package user

import (
	"errors"
	"strings"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is a marketplace account. Every user may both list items for sale
// and place orders; bills reference the user they are addressed to.
type User struct {
	id    kernel.UUID
	email string
	name  string

	isConstructed bool
}

// NewUser creates a User aggregate.
func NewUser(id kernel.UUID, email string, name string) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setName(name),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, email string, name string) (*User, error) {
	return NewUser(id, email, name)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// IsEqual compares users by identity.
func (u *User) IsEqual(other *User) bool {
	return u.id.IsEqual(other.id)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}
