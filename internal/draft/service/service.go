package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/draft/domain"
)

var ErrNotFound = errors.New("draft_not_found")

// Store autosaves form drafts. Writes are debounced per kind so rapid
// edits collapse into one database write; the in-memory copy is always
// current, so a read immediately after a save sees the latest payload.
// Database failures degrade to memory-only persistence instead of
// failing the request.
type Store struct {
	db       *gorm.DB
	log      *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	latest  map[string]domain.Draft
	pending map[string]*time.Timer
}

func NewStore(db *gorm.DB, log *zap.Logger, debounce time.Duration) *Store {
	return &Store{
		db:       db,
		log:      log,
		debounce: debounce,
		latest:   make(map[string]domain.Draft),
		pending:  make(map[string]*time.Timer),
	}
}

// Save records the draft and schedules a persist after the debounce
// window. A save during the window replaces the pending payload and
// restarts the timer.
func (s *Store) Save(ctx context.Context, kind string, payload json.RawMessage) {
	key := domain.KeyFor(kind)
	d := domain.Draft{
		Key:       key,
		Kind:      kind,
		Payload:   append([]byte(nil), payload...),
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[key] = d

	if t, ok := s.pending[key]; ok {
		t.Stop()
	}
	s.pending[key] = time.AfterFunc(s.debounce, func() {
		s.persist(key)
	})
}

func (s *Store) persist(key string) {
	s.mu.Lock()
	d, ok := s.latest[key]
	delete(s.pending, key)
	s.mu.Unlock()
	if !ok {
		return
	}
	if err := s.db.Save(&d).Error; err != nil {
		s.log.Warn("draft persist failed, keeping in memory",
			zap.String("key", key), zap.Error(err))
	}
}

// Load returns the latest draft for a kind, preferring the in-memory
// copy over what has been flushed to the database.
func (s *Store) Load(ctx context.Context, kind string) (json.RawMessage, error) {
	key := domain.KeyFor(kind)

	s.mu.Lock()
	if d, ok := s.latest[key]; ok {
		payload := append([]byte(nil), d.Payload...)
		s.mu.Unlock()
		return payload, nil
	}
	s.mu.Unlock()

	var d domain.Draft
	err := s.db.WithContext(ctx).First(&d, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(d.Payload), nil
}

// Clear discards the draft for a kind, including any pending write.
func (s *Store) Clear(ctx context.Context, kind string) error {
	key := domain.KeyFor(kind)

	s.mu.Lock()
	delete(s.latest, key)
	if t, ok := s.pending[key]; ok {
		t.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	return s.db.WithContext(ctx).Delete(&domain.Draft{}, "key = ?", key).Error
}

// Flush persists every pending draft immediately. Called on shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.pending))
	for key, t := range s.pending {
		t.Stop()
		keys = append(keys, key)
	}
	s.pending = make(map[string]*time.Timer)
	s.mu.Unlock()

	for _, key := range keys {
		s.persist(key)
	}
}
