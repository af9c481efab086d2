package domain

import (
	"sort"
	"strings"
)

// ChatKey identifies the ledger partition of a conversation.
// For groups it is the group id verbatim; for 1:1 chats it is the two
// participant ids sorted ascending and joined, so both participants resolve
// to the same partition regardless of who is "self".
type ChatKey string

const groupIDPrefix = "group-"

func IsGroupID(id string) bool {
	return strings.HasPrefix(id, groupIDPrefix)
}

func (k ChatKey) IsGroup() bool {
	return IsGroupID(string(k))
}

// ResolveKey derives the ledger partition for a conversation between selfID
// and a peer or group. Pure and total: ResolveKey(a, b) == ResolveKey(b, a).
func ResolveKey(selfID, peerOrGroupID string) ChatKey {
	if IsGroupID(peerOrGroupID) {
		return ChatKey(peerOrGroupID)
	}
	ids := []string{selfID, peerOrGroupID}
	sort.Strings(ids)
	return ChatKey(strings.Join(ids, "-"))
}
