package search

import (
	"strconv"
	"strings"

	"chat-mock/domain"
)

// Query represents the structured parameters of a message search.
// It decouples raw compose-box input from the index engine requirements.
type Query struct {
	RawInput string         // the original input from the user
	Terms    string         // the actual text to match
	ChatKey  domain.ChatKey // restrict to one conversation; empty means all
	Limit    int            // pagination: number of results
}

// NewQuery parses a raw string to extract command-line style arguments.
// Example: /find dinner plans --chat user-2-user-7 --limit 5
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "chat":
				query.ChatKey = domain.ChatKey(val)
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // skip the value part in the next iteration
			continue
		}

		// Anything that is not a flag or a /command is a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
