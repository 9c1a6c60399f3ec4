package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"mediation_portal/internal/content"
	"mediation_portal/internal/repository"
)

// memStore implements ContentStore in memory with the same contract as the
// mongo-backed store, singleton-active clearing included.
type memStore struct {
	mu   sync.Mutex
	cols map[string][]bson.M
}

func newMemStore() *memStore {
	return &memStore{cols: map[string][]bson.M{}}
}

func (s *memStore) seed(e *content.Entry, docs ...bson.M) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		if _, ok := d["_id"]; !ok {
			d["_id"] = bson.NewObjectID()
		}
		s.cols[e.Collection] = append(s.cols[e.Collection], d)
	}
}

func (s *memStore) all(e *content.Entry) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bson.M{}, s.cols[e.Collection]...)
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}

func (s *memStore) List(_ context.Context, e *content.Entry, q repository.ListQuery) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []bson.M{}
	for _, doc := range s.cols[e.Collection] {
		if matches(doc, q.Filter) {
			out = append(out, doc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, _ := out[i]["order"].(int)
		oj, _ := out[j]["order"].(int)
		return oi < oj
	})
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *memStore) GetByID(_ context.Context, e *content.Entry, id bson.ObjectID) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.cols[e.Collection] {
		if doc["_id"] == id {
			return doc, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) Insert(_ context.Context, e *content.Entry, doc bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	doc["_id"] = bson.NewObjectID()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	s.cols[e.Collection] = append(s.cols[e.Collection], doc)
	if e.SingletonActive && doc["isActive"] == true {
		for _, sib := range s.cols[e.Collection] {
			if sib["_id"] != doc["_id"] {
				sib["isActive"] = false
			}
		}
	}
	return doc, nil
}

func (s *memStore) Update(_ context.Context, e *content.Entry, id bson.ObjectID, set bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target bson.M
	for _, doc := range s.cols[e.Collection] {
		if doc["_id"] == id {
			target = doc
			break
		}
	}
	if target == nil {
		return repository.ErrNotFound
	}
	if e.SingletonActive && set["isActive"] == true {
		for _, sib := range s.cols[e.Collection] {
			if sib["_id"] != id {
				sib["isActive"] = false
			}
		}
	}
	for k, v := range set {
		target[k] = v
	}
	target["updatedAt"] = time.Now().UTC()
	return nil
}

func (s *memStore) Delete(_ context.Context, e *content.Entry, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.cols[e.Collection]
	for i, doc := range docs {
		if doc["_id"] == id {
			s.cols[e.Collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memStore) GetSingleton(_ context.Context, e *content.Entry) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if docs := s.cols[e.Collection]; len(docs) > 0 {
		return docs[0], nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) UpsertSingleton(_ context.Context, e *content.Entry, set bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if docs := s.cols[e.Collection]; len(docs) > 0 {
		for k, v := range set {
			docs[0][k] = v
		}
		docs[0]["updatedAt"] = now
		return docs[0], nil
	}
	doc := bson.M{"_id": bson.NewObjectID(), "createdAt": now, "updatedAt": now}
	for k, v := range set {
		doc[k] = v
	}
	s.cols[e.Collection] = append(s.cols[e.Collection], doc)
	return doc, nil
}
