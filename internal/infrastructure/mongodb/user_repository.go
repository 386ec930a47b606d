package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección
// "users".
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	if _, err := r.col.InsertOne(context.Background(), user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID busca un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	return r.findOne(bson.M{"_id": id})
}

// FindByEmail busca un usuario por email (ya normalizado a minúsculas).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *UserRepo) findOne(filter bson.M) (*entity.User, error) {
	var u entity.User
	err := r.col.FindOne(context.Background(), filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// Update reemplaza el documento completo del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	_, err := r.col.ReplaceOne(context.Background(), bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios (el panel de administración no pagina).
func (r *UserRepo) List() ([]*entity.User, error) {
	cursor, err := r.col.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(context.Background())

	var users []*entity.User
	if err := cursor.All(context.Background(), &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
