package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

type edgeKey struct {
	kind   domain.EdgeKind
	actor  string
	target string
}

type memTweet struct {
	tweet domain.Tweet
	seq   int64
}

// MemoryStore implements the repository ports on in-process maps behind a
// single mutex. It mirrors the Postgres store's constraint behavior
// (uniqueness, FK checks, no self-follow) so the services see identical
// semantics; it backs the test suites and DB_URL=memory local runs.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[string]*domain.User
	byEmail    map[string]string
	byUsername map[string]string
	tweets     map[string]memTweet
	edges      map[edgeKey]struct{}
	nextSeq    int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]*domain.User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
		tweets:     make(map[string]memTweet),
		edges:      make(map[edgeKey]struct{}),
	}
}

// --- users ---

func (s *MemoryStore) SaveUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	if _, ok := s.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}

	u := *user
	s.users[u.ID] = &u
	s.byEmail[u.Email] = u.ID
	s.byUsername[u.Username] = u.ID
	return nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	u := *user
	s.users[u.ID] = &u
	return nil
}

func (s *MemoryStore) UserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userLocked(id)
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userLocked(s.byEmail[email])
}

func (s *MemoryStore) UserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userLocked(s.byUsername[username])
}

func (s *MemoryStore) userLocked(id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// --- tweets ---

func (s *MemoryStore) SaveTweet(_ context.Context, tweet *domain.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[tweet.Author.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.nextSeq++
	s.tweets[tweet.ID] = memTweet{tweet: *tweet, seq: s.nextSeq}
	return nil
}

func (s *MemoryStore) ListTweets(_ context.Context, filter ports.TweetFilter) ([]domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make([]memTweet, 0, len(s.tweets))
	for _, mt := range s.tweets {
		if filter.AuthorID != "" && mt.tweet.Author.ID != filter.AuthorID {
			continue
		}
		selected = append(selected, mt)
	}

	// Newest first; equal timestamps fall back to insertion order.
	sort.Slice(selected, func(i, j int) bool {
		ti, tj := selected[i].tweet.CreatedAt, selected[j].tweet.CreatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return selected[i].seq > selected[j].seq
	})

	tweets := make([]domain.Tweet, len(selected))
	for i, mt := range selected {
		tweets[i] = mt.tweet
	}
	return tweets, nil
}

func (s *MemoryStore) CountTweetsByAuthor(_ context.Context, authorID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, mt := range s.tweets {
		if mt.tweet.Author.ID == authorID {
			n++
		}
	}
	return n, nil
}

// --- edges ---

func (s *MemoryStore) CreateEdge(_ context.Context, kind domain.EdgeKind, actorID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTargetLocked(kind, targetID); err != nil {
		return err
	}

	key := edgeKey{kind, actorID, targetID}
	if _, ok := s.edges[key]; ok {
		return domain.ErrEdgeExists
	}
	s.edges[key] = struct{}{}
	return nil
}

func (s *MemoryStore) DeleteEdge(_ context.Context, kind domain.EdgeKind, actorID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{kind, actorID, targetID}
	if _, ok := s.edges[key]; !ok {
		return domain.ErrEdgeNotFound
	}
	delete(s.edges, key)
	return nil
}

func (s *MemoryStore) EdgeExists(_ context.Context, kind domain.EdgeKind, actorID, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.edges[edgeKey{kind, actorID, targetID}]
	return ok, nil
}

func (s *MemoryStore) CountEdgesByTarget(_ context.Context, kind domain.EdgeKind, targetID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.edges {
		if key.kind == kind && key.target == targetID {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CountEdgesByActor(_ context.Context, kind domain.EdgeKind, actorID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.edges {
		if key.kind == kind && key.actor == actorID {
			n++
		}
	}
	return n, nil
}

// checkTargetLocked emulates the FK constraints of the SQL schema.
func (s *MemoryStore) checkTargetLocked(kind domain.EdgeKind, targetID string) error {
	switch kind {
	case domain.EdgeFollow:
		if _, ok := s.users[targetID]; !ok {
			return domain.ErrUserNotFound
		}
	default:
		if _, ok := s.tweets[targetID]; !ok {
			return domain.ErrTweetNotFound
		}
	}
	return nil
}
