package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"nimbus-chat/internal/domain/chat"
)

type ChatRepository interface {
	Create(ctx context.Context, c *chat.Chat) error
	GetByIDAndOwner(ctx context.Context, id bson.ObjectID, ownerID string) (chat.Chat, error)
	// AppendEntries pushes the batch onto history in a single update
	// addressed by (id, ownerID), so ownership is enforced at the same
	// step as the mutation.
	AppendEntries(ctx context.Context, id bson.ObjectID, ownerID string, entries []chat.Entry) error
}

type UserChatIndexRepository interface {
	// AppendSummary extends the owner's index with one summary,
	// creating the index document if it does not exist yet.
	AppendSummary(ctx context.Context, ownerID string, s chat.Summary) error
	GetByOwner(ctx context.Context, ownerID string) (chat.UserChatIndex, error)
}
