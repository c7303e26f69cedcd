package httpdto

import (
	"time"

	"nimbus-chat/internal/domain/chat"
)

// CreateChatRequest is used for POST /api/chats
type CreateChatRequest struct {
	Text string `json:"text"`
}

// CreateChatResponse is returned after creating a chat
type CreateChatResponse struct {
	ChatID string `json:"chatId"`
}

// AppendTurnRequest is used for PUT /api/chats/:id
type AppendTurnRequest struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer"`
	Img      string `json:"img,omitempty"`
}

// AppendTurnResponse acknowledges a successful append
type AppendTurnResponse struct {
	Updated bool `json:"updated"`
}

// SummaryDTO is one row of GET /api/userchats
type SummaryDTO struct {
	ChatID string `json:"chatId"`
	Title  string `json:"title"`
}

// ChatDTO is the full transcript returned by GET /api/chats/:id
type ChatDTO struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	History   []EntryDTO `json:"history"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

type EntryDTO struct {
	Role  string    `json:"role"`
	Parts []PartDTO `json:"parts"`
	Img   string    `json:"img,omitempty"`
}

type PartDTO struct {
	Text string `json:"text"`
}

func FromChat(c chat.Chat) ChatDTO {
	history := make([]EntryDTO, 0, len(c.History))
	for _, e := range c.History {
		parts := make([]PartDTO, 0, len(e.Parts))
		for _, p := range e.Parts {
			parts = append(parts, PartDTO{Text: p.Text})
		}
		history = append(history, EntryDTO{Role: e.Role, Parts: parts, Img: e.Img})
	}
	return ChatDTO{
		ID:        c.ID.Hex(),
		OwnerID:   c.OwnerID,
		History:   history,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromSummarySlice(items []chat.Summary) []SummaryDTO {
	out := make([]SummaryDTO, 0, len(items))
	for _, s := range items {
		out = append(out, SummaryDTO{ChatID: s.ChatID.Hex(), Title: s.Title})
	}
	return out
}
