package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mediation_portal/internal/database"
	"mediation_portal/internal/models"
)

type AuditStore struct {
	db *database.Mongo
}

func NewAuditStore(db *database.Mongo) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) col() *mongo.Collection {
	return s.db.Collection("audit_logs")
}

func (s *AuditStore) Insert(ctx context.Context, entry models.AuditLog) error {
	_, err := s.col().InsertOne(ctx, entry)
	return err
}

// List returns entries newest-first. Filter supports userId and action.
func (s *AuditStore) List(ctx context.Context, filter bson.M, limit int64) ([]models.AuditLog, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.AuditLog
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.AuditLog{}
	}
	return items, nil
}
