package api

import (
	"context"

	"campus-connect-client/model"
)

type ChatbotAPI struct {
	c *Client
}

// ListSessions returns the user's chat sessions, most recent first.
func (a *ChatbotAPI) ListSessions(ctx context.Context) ([]model.ChatSession, error) {
	var out []model.ChatSession
	if err := a.c.getJSON(ctx, "/chatbot/sessions", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *ChatbotAPI) CreateSession(ctx context.Context, title string) (*model.ChatSession, error) {
	payload := model.CreateChatSessionRequest{Title: title}

	var out model.ChatSession
	if err := a.c.sendJSON(ctx, "POST", "/chatbot/sessions", payload, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *ChatbotAPI) ListMessages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	if err := a.c.getJSON(ctx, "/chatbot/sessions/"+sessionID, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *ChatbotAPI) SendMessage(ctx context.Context, sessionID string, content string) (*model.SendChatMessageResponse, error) {
	payload := model.SendChatMessageRequest{Content: content}

	var out model.SendChatMessageResponse
	if err := a.c.sendJSON(ctx, "POST", "/chatbot/sessions/"+sessionID+"/messages", payload, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
