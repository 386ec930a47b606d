package repository

import "github.com/cooltech/credman-api/internal/domain/entity"

// CredentialRepository puerto de persistencia para credenciales.
type CredentialRepository interface {
	Create(c *entity.Credential) error
	FindByID(id string) (*entity.Credential, error)
	Update(c *entity.Credential) error
	ListByDivision(divisionID string) ([]*entity.Credential, error)
	ListByDivisions(divisionIDs []string) ([]*entity.Credential, error)
}
