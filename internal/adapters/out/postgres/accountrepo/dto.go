// Package accountrepo persists panel accounts.
package accountrepo

import (
	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for panel accounts.
// Logins are unique at the database level as the last line of defense.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	DisplayName  string
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Login:        aggregate.Login(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		DisplayName:  aggregate.DisplayName(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Login, dto.PasswordHash, role, dto.DisplayName)
}
