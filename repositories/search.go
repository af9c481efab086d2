//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_repository.go -package=mocks
package repositories

import (
	"context"
	"log/slog"

	"chat-mock/domain"
	"github.com/blugelabs/bluge"
)

type ISearchRepository interface {
	Index(key domain.ChatKey, message domain.Message) error
	Search(ctx context.Context, terms string, key domain.ChatKey, limit int) ([]SearchHit, uint64, error)
}

// SearchHit is one full-text match over the message history.
type SearchHit struct {
	MessageID string
	ChatKey   domain.ChatKey
	SenderID  string
	Text      string
}

// SearchRepository maintains a Bluge full-text index over TEXT messages.
// The index uses the in-memory configuration; like the rest of the system
// it lives exactly as long as the process.
type SearchRepository struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchRepository(writer *bluge.Writer, log *slog.Logger) *SearchRepository {
	return &SearchRepository{writer: writer, log: log}
}

func (s *SearchRepository) Index(key domain.ChatKey, message domain.Message) error {
	doc := bluge.NewDocument(message.ID).
		AddField(bluge.NewTextField("text", message.Text).StoreValue()).
		AddField(bluge.NewKeywordField("chat_key", string(key)).StoreValue()).
		AddField(bluge.NewKeywordField("sender_id", message.SenderID).StoreValue()).
		AddField(bluge.NewDateTimeField("at", message.Timestamp))

	return s.writer.Update(doc.ID(), doc)
}

// Search matches terms against indexed message text, optionally restricted
// to one conversation. Returns the hits plus the total match count.
func (s *SearchRepository) Search(ctx context.Context, terms string, key domain.ChatKey, limit int) ([]SearchHit, uint64, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("text"))
	if key != "" {
		query.AddMust(bluge.NewTermQuery(string(key)).SetField("chat_key"))
	}

	request := bluge.NewTopNSearch(limit, query).WithStandardAggregations()
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var hits []SearchHit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, 0, err
		}
		if match == nil {
			break
		}

		var hit SearchHit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID = string(value)
			case "text":
				hit.Text = string(value)
			case "chat_key":
				hit.ChatKey = domain.ChatKey(value)
			case "sender_id":
				hit.SenderID = string(value)
			}
			return true
		})
		if err != nil {
			return nil, 0, err
		}
		hits = append(hits, hit)
	}

	return hits, iterator.Aggregations().Count(), nil
}
