package repository

import "github.com/cooltech/credman-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Las búsquedas devuelven (nil, nil) cuando no existe el documento.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
