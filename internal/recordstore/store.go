// Package recordstore keeps the employees and leads tables inside a flat
// key-value store and maintains their consistency: id assignment, lead
// ownership and cascade delete.
//
// Every operation reads the whole table, mutates a copy and writes the whole
// table back. Operations on one Store are serialized; writers in other
// processes sharing the same backend are not coordinated, the last write wins.
package recordstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/frahmantamala/lead-tracker/internal/core/events"
	"github.com/frahmantamala/lead-tracker/internal/storage"
)

// Keys of the persisted tables.
const (
	KeyEmployees     = "employees"
	KeyLeads         = "leads"
	KeyEmployeeIDSeq = "employeeIdSeq"
)

type Store struct {
	kv        storage.RecordStore
	logger    *slog.Logger
	publisher events.Publisher
	now       func() time.Time
	mu        sync.Mutex
}

type Option func(*Store)

// WithClock replaces the wall clock used to stamp leads.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

func NewStore(kv storage.RecordStore, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		logger:    logger,
		publisher: events.NopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
