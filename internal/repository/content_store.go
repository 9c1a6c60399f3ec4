package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mediation_portal/internal/content"
	"mediation_portal/internal/database"
)

// ErrNotFound is returned when an id matches no document.
var ErrNotFound = errors.New("document not found")

// ListQuery carries the read-side knobs built by the handler.
type ListQuery struct {
	Filter bson.M
	Limit  int64
}

// ContentStore runs the generic document CRUD for every registered content
// type. One instance serves all collections.
type ContentStore struct {
	db     *database.Mongo
	useTxn bool
}

func NewContentStore(db *database.Mongo, useTxn bool) *ContentStore {
	return &ContentStore{db: db, useTxn: useTxn}
}

func (s *ContentStore) col(e *content.Entry) *mongo.Collection {
	return s.db.Collection(e.Collection)
}

// List returns documents sorted by order asc with createdAt desc as the
// tiebreak, matching how the public pages display content.
func (s *ContentStore) List(ctx context.Context, e *content.Entry, q ListQuery) ([]bson.M, error) {
	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	if q.Limit > 0 {
		opts = opts.SetLimit(q.Limit)
	}

	cur, err := s.col(e).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []bson.M
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []bson.M{}
	}
	return items, nil
}

func (s *ContentStore) GetByID(ctx context.Context, e *content.Entry, id bson.ObjectID) (bson.M, error) {
	var doc bson.M
	err := s.col(e).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Insert stamps id/createdAt/updatedAt and writes the document. For a
// singleton-active family an active insert then clears the flag on every
// sibling, inside a transaction when the deployment supports one.
func (s *ContentStore) Insert(ctx context.Context, e *content.Entry, doc bson.M) (bson.M, error) {
	now := time.Now().UTC()
	doc["_id"] = bson.NewObjectID()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	if e.SingletonActive && isTrue(doc["isActive"]) {
		err := s.runTxn(ctx, func(ctx context.Context) error {
			if _, err := s.col(e).InsertOne(ctx, doc); err != nil {
				return err
			}
			_, err := s.col(e).UpdateMany(ctx,
				bson.M{"_id": bson.M{"$ne": doc["_id"]}, "isActive": true},
				bson.M{"$set": bson.M{"isActive": false, "updatedAt": now}},
			)
			return err
		})
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	if _, err := s.col(e).InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update applies a partial $set. Clearing of sibling active flags excludes
// the document being updated and runs only after the document itself matched,
// so a miss returns ErrNotFound with the collection untouched even when the
// deployment runs without transactions.
func (s *ContentStore) Update(ctx context.Context, e *content.Entry, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()

	apply := func(ctx context.Context) error {
		res, err := s.col(e).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		if e.SingletonActive && isTrue(set["isActive"]) {
			if _, err := s.col(e).UpdateMany(ctx,
				bson.M{"_id": bson.M{"$ne": id}, "isActive": true},
				bson.M{"$set": bson.M{"isActive": false, "updatedAt": set["updatedAt"]}},
			); err != nil {
				return err
			}
		}
		return nil
	}

	if e.SingletonActive && isTrue(set["isActive"]) {
		return s.runTxn(ctx, apply)
	}
	return apply(ctx)
}

func (s *ContentStore) Delete(ctx context.Context, e *content.Entry, id bson.ObjectID) error {
	res, err := s.col(e).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSingleton returns the single config document. Absence is ErrNotFound,
// which the handler maps to a null payload rather than an error.
func (s *ContentStore) GetSingleton(ctx context.Context, e *content.Entry) (bson.M, error) {
	var doc bson.M
	err := s.col(e).FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UpsertSingleton creates the config document on first write.
func (s *ContentStore) UpsertSingleton(ctx context.Context, e *content.Entry, set bson.M) (bson.M, error) {
	now := time.Now().UTC()
	set["updatedAt"] = now

	_, err := s.col(e).UpdateOne(ctx, bson.M{},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return s.GetSingleton(ctx, e)
}

// runTxn wraps fn in a session transaction. Deployments without a replica
// set disable transactions via config and keep the sequential writes.
func (s *ContentStore) runTxn(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.useTxn {
		return fn(ctx)
	}
	sess, err := s.db.Client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
