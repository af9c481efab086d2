package domain

// Group is a fixed multi-party conversation target. Groups are seeded at
// startup and never created or deleted at runtime; only membership grows,
// when a freshly logged-in user is auto-joined to every group.
type Group struct {
	ID          string
	Name        string
	Description string
	AvatarURL   string
	MemberIDs   []string
}

func (g Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
