package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuditLog is one append-only record of an admin mutation.
type AuditLog struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID     string        `bson:"userId" json:"userId"`
	Action     string        `bson:"action" json:"action"`
	Resource   string        `bson:"resource" json:"resource"`
	ResourceID string        `bson:"resourceId,omitempty" json:"resourceId,omitempty"`
	Details    bson.M        `bson:"details,omitempty" json:"details,omitempty"`
	Timestamp  time.Time     `bson:"timestamp" json:"timestamp"`
}
