package chat

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is one text fragment of a history entry.
type Part struct {
	Text string `bson:"text" json:"text"`
}

// Entry is a single message turn. Entries are immutable once appended
// and history order is chronological.
type Entry struct {
	Role  string `bson:"role" json:"role"`
	Parts []Part `bson:"parts" json:"parts"`
	Img   string `bson:"img,omitempty" json:"img,omitempty"`
}

// Chat is a conversation transcript. History only ever grows; nothing
// is removed or reordered.
type Chat struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   string        `bson:"owner_id" json:"ownerId"`
	History   []Entry       `bson:"history" json:"history"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Summary is one row of a user's chat list.
type Summary struct {
	ChatID bson.ObjectID `bson:"chat_id" json:"chatId"`
	Title  string        `bson:"title" json:"title"`
}

// UserChatIndex holds a user's chat summaries in creation order. At
// most one document exists per owner.
type UserChatIndex struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"-"`
	OwnerID string        `bson:"owner_id" json:"ownerId"`
	Chats   []Summary     `bson:"chats" json:"chats"`
}
