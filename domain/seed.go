package domain

// Seed roster for the simulated session. The data mirrors a small demo
// community; the session user created at login is prepended in front of it.

func SeedUsers() []User {
	return []User{
		{ID: "user-2", Name: "Sophia", Age: 28, Country: "USA", City: "New York", Gender: GenderFemale, AvatarURL: "https://picsum.photos/id/1027/200/200", Bio: "Designer & Dreamer ✨", IsOnline: true},
		{ID: "user-3", Name: "Liam", Age: 31, Country: "Canada", City: "Toronto", Gender: GenderMale, AvatarURL: "https://picsum.photos/id/1005/200/200", Bio: "Coffeeholic and Coder 💻", IsOnline: true},
		{ID: "user-4", Name: "Olivia", Age: 25, Country: "UK", City: "London", Gender: GenderFemale, AvatarURL: "https://picsum.photos/id/1011/200/200", Bio: "Traveling the world 🌍", IsOnline: false},
		{ID: "user-5", Name: "Noah", Age: 29, Country: "Australia", City: "Sydney", Gender: GenderMale, AvatarURL: "https://picsum.photos/id/237/200/200", Bio: "Just a guy with a dog.", IsOnline: true},
		{ID: "user-6", Name: "Ava", Age: 30, Country: "USA", City: "Chicago", Gender: GenderFemale, AvatarURL: "https://picsum.photos/id/30/200/200", Bio: "Artist and cat lover 🎨", IsOnline: false},
	}
}

func SeedGroups() []Group {
	return []Group{
		{
			ID:          "group-1",
			Name:        "🚀 Tech Lovers",
			Description: "All things tech, coding, and gadgets!",
			AvatarURL:   "https://picsum.photos/seed/tech/200/200",
			MemberIDs:   []string{"user-3", "user-5"},
		},
		{
			ID:          "group-2",
			Name:        "🌍 World Travelers",
			Description: "Sharing travel stories and tips.",
			AvatarURL:   "https://picsum.photos/seed/travel/200/200",
			MemberIDs:   []string{"user-4", "user-5"},
		},
		{
			ID:          "group-3",
			Name:        "🎬 Movie Buffs",
			Description: "Discussing the latest films and classics.",
			AvatarURL:   "https://picsum.photos/seed/movie/200/200",
			MemberIDs:   []string{"user-2", "user-4", "user-6"},
		},
	}
}

// SeedGIFs feeds the GIF picker of the demo surface.
func SeedGIFs() []string {
	return []string{
		"https://media.giphy.com/media/3o7TKSjRrfIPjeiVyE/giphy.gif",
		"https://media.giphy.com/media/Q81NcsY6YxK7jxP4_s/giphy.gif",
		"https://media.giphy.com/media/5xtDarmwsuR9sDRObyU/giphy.gif",
		"https://media.giphy.com/media/3o6Zt6fzS6qEbLh2r6/giphy.gif",
		"https://media.giphy.com/media/26gsvAm8UPacJPsfS/giphy.gif",
	}
}
