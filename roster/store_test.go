package roster

import (
	"log/slog"
	"testing"
	"time"

	"chat-mock/clock"
	"chat-mock/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) (*Store, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewStore(slog.Default(), fake), fake
}

func aliceDraft() ProfileDraft {
	return ProfileDraft{
		Name:    "Alice",
		Age:     27,
		Country: "France",
		City:    "Paris",
		Gender:  "Female",
		Bio:     "Hello there",
	}
}

func TestStore_Login_PrependsUserAndJoinsAllGroups(t *testing.T) {
	req := require.New(t)
	store, _ := testStore(t)

	user, err := store.Login(aliceDraft())
	req.NoError(err)
	req.True(user.IsOnline)
	req.NotEmpty(user.ID)

	users := store.Users()
	req.Len(users, 6) // Alice plus the five seed users
	req.Equal(user.ID, users[0].ID)

	for _, g := range store.Groups() {
		req.True(g.HasMember(user.ID))
	}
}

func TestStore_Login_RejectsInvalidDraft(t *testing.T) {
	req := require.New(t)
	store, _ := testStore(t)

	draft := aliceDraft()
	draft.Age = 12
	_, err := store.Login(draft)
	req.ErrorIs(err, errors.ErrInvalidProfile)

	_, ok := store.Session()
	req.False(ok)
}

func TestStore_UpdateProfile_MutatesSessionAndRosterEntry(t *testing.T) {
	req := require.New(t)
	store, _ := testStore(t)

	user, err := store.Login(aliceDraft())
	req.NoError(err)

	updated, ok := store.UpdateProfile(ProfileUpdate{
		Bio:  lo.ToPtr("New bio"),
		City: lo.ToPtr("Lyon"),
	})
	req.True(ok)
	req.Equal(user.ID, updated.ID) // id is immutable
	req.Equal("New bio", updated.Bio)

	fromRoster, found := store.User(user.ID)
	req.True(found)
	req.Equal("Lyon", fromRoster.City)
}

func TestStore_UpdateProfile_NoopWithoutSession(t *testing.T) {
	req := require.New(t)
	store, _ := testStore(t)

	_, ok := store.UpdateProfile(ProfileUpdate{Bio: lo.ToPtr("ghost")})
	req.False(ok)
}

func TestStore_Logout_KeepsRoster(t *testing.T) {
	req := require.New(t)
	store, _ := testStore(t)

	user, err := store.Login(aliceDraft())
	req.NoError(err)

	store.Logout()

	_, ok := store.Session()
	req.False(ok)

	// The roster entry survives the logout
	_, found := store.User(user.ID)
	req.True(found)
	req.Len(store.Users(), 6)
}
