package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"mediation_portal/internal/database"
	"mediation_portal/internal/models"
)

type UserStore struct {
	db *database.Mongo
}

func NewUserStore(db *database.Mongo) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) col() *mongo.Collection {
	return s.db.Collection("users")
}

// FindByEmail matches case-insensitively: emails are stored lowercase and
// the input is lowered before the lookup.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	var u models.User
	err := s.col().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var u models.User
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies the allowed profile fields and stamps updatedAt.
func (s *UserStore) UpdateProfile(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	res, err := s.col().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) countUsers(ctx context.Context) (int64, error) {
	return s.col().CountDocuments(ctx, bson.M{})
}

func (s *UserStore) insertUser(ctx context.Context, u models.User) error {
	_, err := s.col().InsertOne(ctx, u)
	return err
}

// EnsureAdmin creates the bootstrap admin when the users collection is
// empty. Called once at startup; a no-op on every later boot.
func (s *UserStore) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	return ensureAdmin(ctx, s, email, password)
}

// adminSeedStore is the slice of the user store the bootstrap needs; tests
// swap in a fake.
type adminSeedStore interface {
	countUsers(ctx context.Context) (int64, error)
	insertUser(ctx context.Context, u models.User) error
}

func ensureAdmin(ctx context.Context, store adminSeedStore, email, password string) (bool, error) {
	n, err := store.countUsers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	now := time.Now().UTC()
	if err := store.insertUser(ctx, models.User{
		ID:           bson.NewObjectID(),
		Name:         "Administrator",
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return false, err
	}
	return true, nil
}
