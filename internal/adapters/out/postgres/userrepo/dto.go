// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name  string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(usr *user.User) UserDTO {
	return UserDTO{
		ID:    usr.ID().Bytes(),
		Email: usr.Email(),
		Name:  usr.Name(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.Name)
}
