package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKey_OrderIndependent(t *testing.T) {
	req := require.New(t)

	pairs := [][2]string{
		{"user-2", "user-3"},
		{"user-1717243200000", "user-2"},
		{"user-a", "user-b"},
	}
	for _, p := range pairs {
		req.Equal(ResolveKey(p[0], p[1]), ResolveKey(p[1], p[0]))
	}
}

func TestResolveKey_SortsLexicographically(t *testing.T) {
	require.Equal(t, ChatKey("user-2-user-3"), ResolveKey("user-3", "user-2"))
}

func TestResolveKey_GroupIDPassesThrough(t *testing.T) {
	req := require.New(t)
	req.Equal(ChatKey("group-1"), ResolveKey("user-2", "group-1"))
	// Idempotent for group ids regardless of self
	req.Equal(ResolveKey("user-5", "group-1"), ResolveKey("user-2", "group-1"))
}

func TestIsGroupID(t *testing.T) {
	req := require.New(t)
	req.True(IsGroupID("group-1"))
	req.False(IsGroupID("user-2"))
	req.True(ChatKey("group-3").IsGroup())
	req.False(ChatKey("user-2-user-3").IsGroup())
}

func TestMessageStatus_CanAdvanceTo(t *testing.T) {
	req := require.New(t)
	req.True(StatusSent.CanAdvanceTo(StatusDelivered))
	req.True(StatusSent.CanAdvanceTo(StatusSeen))
	req.True(StatusDelivered.CanAdvanceTo(StatusSeen))
	req.False(StatusDelivered.CanAdvanceTo(StatusSent))
	req.False(StatusSeen.CanAdvanceTo(StatusSeen))
	req.False(StatusSeen.CanAdvanceTo(StatusDelivered))
}

func TestMessage_Validate_ExactlyOneContentField(t *testing.T) {
	req := require.New(t)

	req.NoError(Message{Type: TypeText, Text: "hi"}.Validate())
	req.NoError(Message{Type: TypeGIF, ContentURL: "https://example.com/a.gif"}.Validate())
	req.Error(Message{Type: TypeText, Text: "hi", ContentURL: "x"}.Validate())
	req.Error(Message{Type: TypeImage, Text: "hi"}.Validate())
	req.Error(Message{Type: "video", Text: "hi"}.Validate())
}
