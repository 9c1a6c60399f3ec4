package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mediation_portal/internal/models"
)

// Sink is the storage side of the recorder; satisfied by repository.AuditStore.
type Sink interface {
	Insert(ctx context.Context, entry models.AuditLog) error
}

// Recorder appends audit entries without ever blocking or failing the
// request that triggered them.
type Recorder struct {
	sink Sink
	log  *zap.Logger
}

func NewRecorder(sink Sink, log *zap.Logger) *Recorder {
	return &Recorder{sink: sink, log: log}
}

// Record dispatches the write on its own goroutine with its own deadline.
// Errors are logged and swallowed: audit failures must not surface to the
// API caller.
func (r *Recorder) Record(entry models.AuditLog) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.sink.Insert(ctx, entry); err != nil {
			r.log.Warn("audit write failed",
				zap.String("action", entry.Action),
				zap.String("resource", entry.Resource),
				zap.Error(err))
		}
	}()
}
