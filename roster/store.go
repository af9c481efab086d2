//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_roster.go -package=mocks
package roster

import (
	"fmt"
	"log/slog"
	"sync"

	"chat-mock/clock"
	"chat-mock/domain"
)

type IStore interface {
	Login(draft ProfileDraft) (domain.User, error)
	Logout()
	UpdateProfile(update ProfileUpdate) (domain.User, bool)
	Session() (domain.User, bool)
	Users() []domain.User
	Groups() []domain.Group
	User(id string) (domain.User, bool)
	Group(id string) (domain.Group, bool)
}

// ProfileUpdate is a partial profile mutation; nil fields are left alone.
// The id is immutable and therefore absent.
type ProfileUpdate struct {
	Name      *string
	Age       *int
	Country   *string
	City      *string
	Gender    *domain.Gender
	AvatarURL *string
	Bio       *string
}

// Store owns the roster of users and groups plus the single session user.
// It is seeded once and mutated only through Login / UpdateProfile / Logout;
// nothing is ever deleted within a session.
type Store struct {
	mu      sync.RWMutex
	log     *slog.Logger
	clk     clock.Clock
	users   []domain.User
	groups  []domain.Group
	session *domain.User
}

func NewStore(log *slog.Logger, clk clock.Clock) *Store {
	return &Store{
		log:    log,
		clk:    clk,
		users:  domain.SeedUsers(),
		groups: domain.SeedGroups(),
	}
}

// Login validates the draft, mints a fresh user id, prepends the new user to
// the roster, and auto-joins them to every existing group. Auto-join-all is
// a deliberate demo simplification.
func (s *Store) Login(draft ProfileDraft) (domain.User, error) {
	if err := ValidateDraft(draft); err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		ID:        fmt.Sprintf("user-%d", s.clk.Now().UnixMilli()),
		Name:      draft.Name,
		Age:       draft.Age,
		Country:   draft.Country,
		City:      draft.City,
		Gender:    domain.Gender(draft.Gender),
		AvatarURL: draft.AvatarURL,
		Bio:       draft.Bio,
		IsOnline:  true,
	}

	s.session = &user
	s.users = append([]domain.User{user}, s.users...)
	for i := range s.groups {
		s.groups[i].MemberIDs = append(s.groups[i].MemberIDs, user.ID)
	}

	s.log.Info("Session user logged in", "id", user.ID, "name", user.Name)
	return user, nil
}

// Logout clears the session user without touching the roster or any
// messages; conversations merely become unreachable until the next login.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.log.Info("Session user logged out", "id", s.session.ID)
	}
	s.session = nil
}

// UpdateProfile replaces the provided fields on the session user and the
// matching roster entry. Without an active session it is a silent no-op.
func (s *Store) UpdateProfile(update ProfileUpdate) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		s.log.Debug("Profile update ignored, no active session")
		return domain.User{}, false
	}

	applyUpdate(s.session, update)
	for i := range s.users {
		if s.users[i].ID == s.session.ID {
			s.users[i] = *s.session
			break
		}
	}
	return *s.session, true
}

func applyUpdate(u *domain.User, update ProfileUpdate) {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Age != nil {
		u.Age = *update.Age
	}
	if update.Country != nil {
		u.Country = *update.Country
	}
	if update.City != nil {
		u.City = *update.City
	}
	if update.Gender != nil {
		u.Gender = *update.Gender
	}
	if update.AvatarURL != nil {
		u.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
}

func (s *Store) Session() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.User{}, false
	}
	return *s.session, true
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Groups() []domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Group, len(s.groups))
	for i, g := range s.groups {
		members := make([]string, len(g.MemberIDs))
		copy(members, g.MemberIDs)
		g.MemberIDs = members
		out[i] = g
	}
	return out
}

func (s *Store) User(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) Group(id string) (domain.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groups {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Group{}, false
}
