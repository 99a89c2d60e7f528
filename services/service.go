package services

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"socialgraph/internal/repository"
)

// Service is the core API over one relation store. All mutations run in a
// single store transaction so their checks and writes never interleave with
// another mutation.
type Service struct {
	store *repository.Store
	log   *zap.Logger
	now   func() time.Time
	newID func() bson.ObjectID
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(store *repository.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   zap.NewNop(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: bson.NewObjectID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset empties the store.
func (s *Service) Reset() {
	s.store.Reset()
	s.log.Info("store reset")
}

// ResetWith builds fresh contents with load on a private store and, when load
// succeeds, swaps them in for everything currently stored. On failure the
// current contents stay untouched.
func (s *Service) ResetWith(load func(staging *Service) error) error {
	staging := &Service{
		store: repository.NewStore(),
		log:   s.log,
		now:   s.now,
		newID: s.newID,
	}
	if err := load(staging); err != nil {
		return err
	}
	s.store.ReplaceWith(staging.store)
	s.log.Info("store replaced")
	return nil
}

func parseID(field, hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, invalid("%s must be a valid id", field)
	}
	return id, nil
}
