//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/roster"
	"chat-mock/runtime"
)

type ISessionService interface {
	Login(draft roster.ProfileDraft) (domain.User, error)
	Logout()
	UpdateProfile(update roster.ProfileUpdate) (domain.User, bool)
	Session() (domain.User, bool)
	Users() []domain.User
	Groups() []domain.Group
}

// SessionService fronts the roster store and announces roster mutations on
// the event stream so subscribed observers can refresh their views.
type SessionService struct {
	store        roster.IStore
	orchestrator *runtime.Orchestrator
}

func NewSessionService(store roster.IStore, o *runtime.Orchestrator) *SessionService {
	return &SessionService{store: store, orchestrator: o}
}

func (s *SessionService) Login(draft roster.ProfileDraft) (domain.User, error) {
	user, err := s.store.Login(draft)
	if err != nil {
		return domain.User{}, err
	}
	s.orchestrator.Emit(event.RosterChanged{Reason: "login"})
	return user, nil
}

// Logout clears the session only; the roster and every conversation
// survive until the process ends.
func (s *SessionService) Logout() {
	s.store.Logout()
	s.orchestrator.Emit(event.RosterChanged{Reason: "logout"})
}

func (s *SessionService) UpdateProfile(update roster.ProfileUpdate) (domain.User, bool) {
	user, ok := s.store.UpdateProfile(update)
	if ok {
		s.orchestrator.Emit(event.RosterChanged{Reason: "profile-update"})
	}
	return user, ok
}

func (s *SessionService) Session() (domain.User, bool) {
	return s.store.Session()
}

func (s *SessionService) Users() []domain.User {
	return s.store.Users()
}

func (s *SessionService) Groups() []domain.Group {
	return s.store.Groups()
}
