package session

import (
	"context"
	"sort"
	"sync"

	"pitchside/internal/common"

	"github.com/google/uuid"
)

// CardImagePlaceholder replaces rendered card bodies in snapshots so the
// persisted window stays small.
const CardImagePlaceholder = "[card]"

// Entry is one row of the merged conversation view. Pending entries carry a
// correlation id and no server id yet; confirmed entries are keyed by the
// server-assigned id.
type Entry struct {
	ID            uint64             `json:"id,omitempty"`
	CorrelationID string             `json:"correlation_id,omitempty"`
	SenderID      uint64             `json:"sender_id"`
	Body          string             `json:"body"`
	Kind          common.MessageKind `json:"kind"`
	CreatedAt     int64              `json:"created_at_unix,omitempty"`
	Pending       bool               `json:"pending,omitempty"`
}

// HistoryLoader fetches one reverse-chronological page of confirmed history
// older than beforeID (0 means newest page).
type HistoryLoader interface {
	LoadPage(ctx context.Context, beforeID uint64, limit int) ([]Entry, error)
}

// Session keeps one user's merged, deduplicated view of a single
// conversation: confirmed history plus locally-sent, not-yet-confirmed
// messages. All methods are safe for concurrent use; the fan-out consumer
// and the UI goroutine share it.
type Session struct {
	mu sync.Mutex

	userID    uint64
	groupID   uint64 // 0 for a direct conversation
	loader    HistoryLoader
	pageSize  int
	snapLimit int

	confirmed []Entry // ascending by server id
	pending   []Entry // in local send order
	seen      map[uint64]struct{}
	oldestID  uint64 // cursor for backward pagination, 0 until first load
	loadedAll bool
}

// NewSession builds a session over a direct conversation.
func NewSession(userID uint64, loader HistoryLoader, pageSize, snapshotLimit int) *Session {
	return NewGroupSession(userID, 0, loader, pageSize, snapshotLimit)
}

// NewGroupSession builds a session scoped to one group. Direct and group
// message ids come from independent sequences, so the group id doubles as
// the discriminator when interpreting fan-out events.
func NewGroupSession(userID, groupID uint64, loader HistoryLoader, pageSize, snapshotLimit int) *Session {
	if pageSize <= 0 {
		pageSize = 50
	}
	if snapshotLimit <= 0 {
		snapshotLimit = 200
	}

	return &Session{
		userID:    userID,
		groupID:   groupID,
		loader:    loader,
		pageSize:  pageSize,
		snapLimit: snapshotLimit,
		seen:      make(map[uint64]struct{}),
	}
}

// Send appends an optimistic pending entry and returns its correlation id.
// The caller issues the persist request with the same id; until the
// confirmation arrives the entry stays visible with a pending flag, and a
// failed send leaves it in place for manual retry.
func (s *Session) Send(body string, kind common.MessageKind) string {
	corrID := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, Entry{
		CorrelationID: corrID,
		SenderID:      s.userID,
		Body:          body,
		Kind:          kind,
		Pending:       true,
	})

	return corrID
}

// Confirm reconciles a server-confirmed message into the view. A matching
// pending entry is replaced in place; anything else (a message from the
// other party, or a confirmation whose pending copy is gone) is appended,
// deduplicated by server id.
func (s *Session) Confirm(e Entry) {
	e.Pending = false

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[e.ID]; ok {
		return
	}

	if e.CorrelationID != "" {
		for i, p := range s.pending {
			if p.CorrelationID == e.CorrelationID {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				break
			}
		}
	}

	s.insertConfirmed(e)
}

// HandleEvent feeds a fan-out event into the session. Payloads carrying a
// group id are matched against the session's scope before the message id is
// interpreted, since the direct and group id sequences overlap. Events for
// other conversations of the same scope are the caller's problem.
func (s *Session) HandleEvent(ev common.Event) {
	switch ev.Type {
	case common.MessageCreatedEvent:
		if p, ok := ev.Payload.(common.MessagePayload); ok && p.GroupID == s.groupID {
			s.Confirm(Entry{
				ID:            p.ID,
				CorrelationID: p.CorrelationID,
				SenderID:      p.SenderID,
				Body:          p.Body,
				Kind:          p.Kind,
				CreatedAt:     p.CreatedAt.Unix(),
			})
		}
	case common.MessageDeletedEvent:
		if p, ok := ev.Payload.(common.DeletionPayload); ok && p.GroupID == s.groupID {
			s.Remove(p.MessageID)
		}
	}
}

// Remove drops the entry with the given server id, pending or not.
func (s *Session) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.confirmed {
		if e.ID == id {
			s.confirmed = append(s.confirmed[:i], s.confirmed[i+1:]...)
			break
		}
	}
	delete(s.seen, id)
}

// LoadOlder pages backward through history using the oldest loaded id as
// cursor. It returns how many new entries were merged; entries already in
// the view are skipped, so repeating a cursor never duplicates anything.
func (s *Session) LoadOlder(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.loadedAll {
		s.mu.Unlock()
		return 0, nil
	}
	cursor := s.oldestID
	limit := s.pageSize
	s.mu.Unlock()

	page, err := s.loader.LoadPage(ctx, cursor, limit)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, e := range page {
		if _, ok := s.seen[e.ID]; ok {
			continue
		}
		e.Pending = false
		s.insertConfirmed(e)
		added++
	}

	if len(page) < limit {
		s.loadedAll = true
	}

	return added, nil
}

// insertConfirmed keeps confirmed ascending by server id. Callers hold mu.
func (s *Session) insertConfirmed(e Entry) {
	s.seen[e.ID] = struct{}{}

	i := sort.Search(len(s.confirmed), func(i int) bool {
		return s.confirmed[i].ID >= e.ID
	})
	s.confirmed = append(s.confirmed, Entry{})
	copy(s.confirmed[i+1:], s.confirmed[i:])
	s.confirmed[i] = e

	if e.ID > 0 && (s.oldestID == 0 || e.ID < s.oldestID) {
		s.oldestID = e.ID
	}
}

// Entries returns the merged view: confirmed history in server order, then
// pending sends in local order. Clients sort by server id, never by local
// send order across parties.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.confirmed)+len(s.pending))
	out = append(out, s.confirmed...)
	out = append(out, s.pending...)
	return out
}

// Snapshot returns the bounded window persisted for fast reopen: the
// most-recent entries up to the snapshot limit, with large card payloads
// replaced by a placeholder.
func (s *Session) Snapshot() []Entry {
	entries := s.Entries()

	if len(entries) > s.snapLimit {
		entries = entries[len(entries)-s.snapLimit:]
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Kind == common.KindCardImage {
			e.Body = CardImagePlaceholder
		}
		out[i] = e
	}
	return out
}

// Restore seeds the session from a previously persisted snapshot.
func (s *Session) Restore(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if e.Pending {
			s.pending = append(s.pending, e)
			continue
		}
		if _, ok := s.seen[e.ID]; ok {
			continue
		}
		s.insertConfirmed(e)
	}
}
