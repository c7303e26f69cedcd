package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"nimbus-chat/internal/domain/chat"
	nimbus_errors "nimbus-chat/pkg/errors"
)

const userChatsCollection = "userchats"

type MongoUserChatIndexRepository struct {
	coll *mongo.Collection
}

func NewUserChatIndexRepository(db *mongo.Database) UserChatIndexRepository {
	return &MongoUserChatIndexRepository{coll: db.Collection(userChatsCollection)}
}

// AppendSummary is a single conditional upsert keyed by owner_id, so two
// concurrent first chats for the same user cannot create duplicate index
// documents. The equality filter populates owner_id on insert.
func (r *MongoUserChatIndexRepository) AppendSummary(ctx context.Context, ownerID string, s chat.Summary) error {
	filter := bson.M{"owner_id": ownerID}
	update := bson.M{"$push": bson.M{"chats": s}}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (r *MongoUserChatIndexRepository) GetByOwner(ctx context.Context, ownerID string) (chat.UserChatIndex, error) {
	var idx chat.UserChatIndex
	if err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&idx); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return chat.UserChatIndex{}, nimbus_errors.ErrNotFound
		}
		return chat.UserChatIndex{}, err
	}
	return idx, nil
}
