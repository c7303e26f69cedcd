package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"nimbus-chat/internal/domain/chat"
	nimbus_errors "nimbus-chat/pkg/errors"
)

const chatsCollection = "chats"

type MongoChatRepository struct {
	coll *mongo.Collection
}

func NewChatRepository(db *mongo.Database) ChatRepository {
	return &MongoChatRepository{coll: db.Collection(chatsCollection)}
}

func (r *MongoChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *MongoChatRepository) GetByIDAndOwner(ctx context.Context, id bson.ObjectID, ownerID string) (chat.Chat, error) {
	var c chat.Chat
	filter := bson.M{"_id": id, "owner_id": ownerID}
	if err := r.coll.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return chat.Chat{}, nimbus_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *MongoChatRepository) AppendEntries(ctx context.Context, id bson.ObjectID, ownerID string, entries []chat.Entry) error {
	filter := bson.M{"_id": id, "owner_id": ownerID}
	update := bson.M{
		"$push": bson.M{"history": bson.M{"$each": entries}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return nimbus_errors.ErrNotFound
	}
	return nil
}
