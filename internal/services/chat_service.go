package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"nimbus-chat/internal/domain/chat"
	"nimbus-chat/internal/repository"
	nimbus_errors "nimbus-chat/pkg/errors"
)

// titleMaxRunes caps chat-list titles at the first 40 characters of the
// initiating message.
const titleMaxRunes = 40

type ChatService struct {
	chats repository.ChatRepository
	index repository.UserChatIndexRepository
}

func NewChatService(chats repository.ChatRepository, index repository.UserChatIndexRepository) *ChatService {
	return &ChatService{chats: chats, index: index}
}

// Start creates a chat seeded with one user entry and extends the
// owner's chat index with its summary. The two writes are not one
// transaction: an index failure after the insert leaves an orphaned
// chat, which the caller surfaces as an internal error.
func (s *ChatService) Start(ctx context.Context, ownerID, text string) (bson.ObjectID, error) {
	if text == "" {
		return bson.ObjectID{}, nimbus_errors.ErrInvalidInput
	}

	c := chat.Chat{
		OwnerID: ownerID,
		History: []chat.Entry{
			{Role: chat.RoleUser, Parts: []chat.Part{{Text: text}}},
		},
	}
	if err := s.chats.Create(ctx, &c); err != nil {
		return bson.ObjectID{}, err
	}

	summary := chat.Summary{ChatID: c.ID, Title: truncateTitle(text)}
	if err := s.index.AppendSummary(ctx, ownerID, summary); err != nil {
		return bson.ObjectID{}, err
	}

	return c.ID, nil
}

// ListSummaries returns the caller's chat list in creation order. A
// user with no chats gets an empty list, never an error.
func (s *ChatService) ListSummaries(ctx context.Context, ownerID string) ([]chat.Summary, error) {
	idx, err := s.index.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, nimbus_errors.ErrNotFound) {
			return []chat.Summary{}, nil
		}
		return nil, err
	}
	if idx.Chats == nil {
		return []chat.Summary{}, nil
	}
	return idx.Chats, nil
}

// Get returns a chat only when both the id and the owner match. A
// malformed id behaves like a missing chat.
func (s *ChatService) Get(ctx context.Context, ownerID, idHex string) (chat.Chat, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return chat.Chat{}, nimbus_errors.ErrNotFound
	}
	return s.chats.GetByIDAndOwner(ctx, id, ownerID)
}

type AppendTurnInput struct {
	Question string
	Answer   string
	Img      string
}

// AppendTurn appends one model entry, preceded by a user entry when a
// question is present, as a single batch addressed by (id, owner).
func (s *ChatService) AppendTurn(ctx context.Context, ownerID, idHex string, input AppendTurnInput) error {
	if input.Answer == "" {
		return nimbus_errors.ErrInvalidInput
	}

	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nimbus_errors.ErrNotFound
	}

	entries := make([]chat.Entry, 0, 2)
	if input.Question != "" {
		entries = append(entries, chat.Entry{
			Role:  chat.RoleUser,
			Parts: []chat.Part{{Text: input.Question}},
			Img:   input.Img,
		})
	}
	entries = append(entries, chat.Entry{
		Role:  chat.RoleModel,
		Parts: []chat.Part{{Text: input.Answer}},
	})

	return s.chats.AppendEntries(ctx, id, ownerID, entries)
}

func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxRunes {
		return text
	}
	return string(runes[:titleMaxRunes])
}
