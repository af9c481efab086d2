package services

import (
	"testing"
	"time"

	"chat-mock/clock"
	"chat-mock/ledger"
	"chat-mock/observability"
	"chat-mock/roster"
	"chat-mock/runtime"
	"chat-mock/runtime/workers"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"log/slog"
)

func newSessionFixture(t *testing.T) (*SessionService, *roster.Store) {
	t.Helper()
	log := slog.Default()
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	store := roster.NewStore(log, clk)

	orch := runtime.NewOrchestrator(log, runtime.DefaultConfig(), store,
		ledger.New(log, clk), nil, workers.NewSupervisor(log),
		runtime.NewRegistry(), runtime.NewScheduler(log, clk),
		observability.NewStats(log))

	return NewSessionService(store, orch), store
}

func TestSessionService_LoginSeedsRosterPosition(t *testing.T) {
	req := require.New(t)
	service, _ := newSessionFixture(t)

	user, err := service.Login(roster.ProfileDraft{
		Name: "Alice", Age: 30, Country: "France", City: "Paris", Gender: "Female",
	})
	req.NoError(err)
	req.True(user.IsOnline)

	// The fresh user leads the roster, ahead of the seeded profiles.
	users := service.Users()
	req.Equal(user.ID, users[0].ID)
	req.Len(users, 6)

	// And belongs to every group.
	for _, group := range service.Groups() {
		req.True(group.HasMember(user.ID))
	}
}

func TestSessionService_LogoutKeepsRoster(t *testing.T) {
	req := require.New(t)
	service, _ := newSessionFixture(t)

	_, err := service.Login(roster.ProfileDraft{
		Name: "Alice", Age: 30, Country: "France", City: "Paris", Gender: "Female",
	})
	req.NoError(err)

	service.Logout()

	_, ok := service.Session()
	req.False(ok)
	req.Len(service.Users(), 6)
}

func TestSessionService_UpdateProfile(t *testing.T) {
	req := require.New(t)
	service, _ := newSessionFixture(t)

	_, err := service.Login(roster.ProfileDraft{
		Name: "Alice", Age: 30, Country: "France", City: "Paris", Gender: "Female",
	})
	req.NoError(err)

	updated, ok := service.UpdateProfile(roster.ProfileUpdate{Bio: lo.ToPtr("hello")})
	req.True(ok)
	req.Equal("hello", updated.Bio)

	// Without a session the update is a silent no-op.
	service.Logout()
	_, ok = service.UpdateProfile(roster.ProfileUpdate{Bio: lo.ToPtr("ignored")})
	req.False(ok)
}
