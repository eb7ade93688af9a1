package model

type ChatSession struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	UserID    string `json:"userId"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

type ChatMessage struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	IsBot     bool   `json:"isBot"`
	CreatedAt string `json:"createdAt"`
}

type CreateChatSessionRequest struct {
	Title string `json:"title" validate:"required"`
}

type SendChatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// SendChatMessageResponse pairs the stored user message with the bot reply.
// SessionUpdated is present when the first message renamed the session.
type SendChatMessageResponse struct {
	UserMessage    ChatMessage  `json:"userMessage"`
	BotResponse    ChatMessage  `json:"botResponse"`
	SessionUpdated *ChatSession `json:"sessionUpdated,omitempty"`
}
