package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"campus-connect-client/model"
)

// Chat drives the assistant page. All state mutations are guarded by a
// generation counter: switching sessions bumps it, and any in-flight fetch or
// send started under an older generation discards its result instead of
// writing into the newly selected conversation.
type Chat struct {
	app *App

	mu         sync.Mutex
	generation uint64
	sessions   []model.ChatSession
	active     *model.ChatSession
	messages   []model.ChatMessage
	sending    bool
}

func newChat(a *App) *Chat {
	return &Chat{app: a}
}

func (c *Chat) Sessions() []model.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.ChatSession, len(c.sessions))
	copy(out, c.sessions)
	return out
}

func (c *Chat) ActiveSession() *model.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return nil
	}
	s := *c.active
	return &s
}

func (c *Chat) Messages() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Chat) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Init loads the session list and opens the most recent conversation.
func (c *Chat) Init(ctx context.Context) error {
	sessions, err := c.app.Client.Chatbot.ListSessions(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.sessions = sessions
	gen := c.generation
	var activeID string
	if len(sessions) > 0 {
		s := sessions[0]
		c.active = &s
		activeID = s.ID
	} else {
		c.active = nil
		c.messages = nil
	}
	c.mu.Unlock()

	if activeID == "" {
		return nil
	}

	return c.loadMessages(ctx, activeID, gen)
}

// SwitchSession makes the given session current and fetches its history.
// Results of any fetch still running for the previous session are dropped.
func (c *Chat) SwitchSession(ctx context.Context, id string) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation

	var found *model.ChatSession
	for i := range c.sessions {
		if c.sessions[i].ID == id {
			s := c.sessions[i]
			found = &s
			break
		}
	}
	if found == nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: unknown chat session %q", model.ErrInvalidInput, id)
	}

	c.active = found
	c.messages = nil
	c.mu.Unlock()

	return c.loadMessages(ctx, id, gen)
}

// CreateSession starts a fresh conversation and makes it current.
func (c *Chat) CreateSession(ctx context.Context) (*model.ChatSession, error) {
	created, err := c.app.Client.Chatbot.CreateSession(ctx, "New Chat")
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.generation++
	c.sessions = append([]model.ChatSession{*created}, c.sessions...)
	c.active = created
	c.messages = nil
	c.mu.Unlock()

	return created, nil
}

// Send posts a message to the active session, creating one first if none
// exists. The user's text appears immediately as a temporary message; when
// the backend answers, the temporary entry is replaced by the stored pair.
func (c *Chat) Send(ctx context.Context, content string) error {
	if content == "" {
		return fmt.Errorf("%w: message content is empty", model.ErrInvalidInput)
	}

	c.mu.Lock()
	if c.active == nil {
		c.mu.Unlock()
		if _, err := c.CreateSession(ctx); err != nil {
			return err
		}
		c.mu.Lock()
	}

	gen := c.generation
	sessionID := c.active.ID
	temp := model.ChatMessage{
		ID:        "temp-" + uuid.NewString(),
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	c.messages = append(c.messages, temp)
	c.sending = true
	c.mu.Unlock()

	resp, err := c.app.Client.Chatbot.SendMessage(ctx, sessionID, content)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sending = false

	if gen != c.generation {
		// The user moved to another session mid-flight. The backend kept
		// the message; this view must not show it.
		return model.ErrStaleResult
	}

	c.dropMessageLocked(temp.ID)

	if err != nil {
		return err
	}

	c.messages = append(c.messages, resp.UserMessage, resp.BotResponse)

	if resp.SessionUpdated != nil {
		c.adoptSessionLocked(*resp.SessionUpdated)
	}

	return nil
}

func (c *Chat) loadMessages(ctx context.Context, sessionID string, gen uint64) error {
	messages, err := c.app.Client.Chatbot.ListMessages(ctx, sessionID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return model.ErrStaleResult
	}
	if err != nil {
		return err
	}

	c.messages = messages
	return nil
}

func (c *Chat) dropMessageLocked(id string) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}

// adoptSessionLocked takes the renamed session from the first-message reply.
func (c *Chat) adoptSessionLocked(updated model.ChatSession) {
	if c.active != nil && c.active.ID == updated.ID {
		c.active = &updated
	}
	for i := range c.sessions {
		if c.sessions[i].ID == updated.ID {
			c.sessions[i] = updated
			return
		}
	}
}
