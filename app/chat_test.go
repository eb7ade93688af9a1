package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"campus-connect-client/config"
	"campus-connect-client/model"
)

func newTestApp(t *testing.T, handler http.Handler) *App {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	a, err := New(Options{
		Config: &config.Config{
			BaseURL:        server.URL,
			RequestTimeout: 5 * time.Second,
			StateFile:      ":memory:",
			MaxUploadSize:  5 * 1024 * 1024,
			IDCardMaxDim:   1600,
			RateLimitRPM:   300,
			CacheTTL:       30 * time.Second,
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a
}

func chatBackend(t *testing.T) (*chi.Mux, chan struct{}) {
	t.Helper()

	// s-1 blocks on sendRelease so tests can interleave a session switch.
	sendRelease := make(chan struct{})

	r := chi.NewRouter()
	r.Get("/chatbot/sessions", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{"_id":"s-1","title":"New Chat","active":true},
			{"_id":"s-2","title":"Exam prep"}
		]`))
	})
	r.Get("/chatbot/sessions/{id}", func(w http.ResponseWriter, req *http.Request) {
		switch chi.URLParam(req, "id") {
		case "s-1":
			w.Write([]byte(`[{"_id":"m-1","content":"hello","isBot":false}]`))
		default:
			w.Write([]byte(`[{"_id":"m-9","content":"when is the exam?","isBot":false},{"_id":"m-10","content":"June 3rd","isBot":true}]`))
		}
	})
	r.Post("/chatbot/sessions", func(w http.ResponseWriter, req *http.Request) {
		var payload model.CreateChatSessionRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		w.Write([]byte(`{"_id":"s-new","title":"` + payload.Title + `"}`))
	})
	r.Post("/chatbot/sessions/{id}/messages", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") == "s-1" {
			<-sendRelease
		}

		var payload model.SendChatMessageRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))

		resp := model.SendChatMessageResponse{
			UserMessage: model.ChatMessage{ID: "m-u", Content: payload.Content},
			BotResponse: model.ChatMessage{ID: "m-b", Content: "echo: " + payload.Content, IsBot: true},
		}
		if strings.HasPrefix(payload.Content, "rename") {
			resp.SessionUpdated = &model.ChatSession{ID: chi.URLParam(req, "id"), Title: "Renamed"}
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	return r, sendRelease
}

func TestChatInitOpensMostRecentSession(t *testing.T) {
	t.Parallel()

	r, _ := chatBackend(t)
	a := newTestApp(t, r)

	require.NoError(t, a.Chat.Init(context.Background()))

	active := a.Chat.ActiveSession()
	require.NotNil(t, active)
	require.Equal(t, "s-1", active.ID)

	messages := a.Chat.Messages()
	require.Len(t, messages, 1)
	require.Equal(t, "hello", messages[0].Content)
	require.Len(t, a.Chat.Sessions(), 2)
}

func TestChatSwitchSession(t *testing.T) {
	t.Parallel()

	r, _ := chatBackend(t)
	a := newTestApp(t, r)
	require.NoError(t, a.Chat.Init(context.Background()))

	require.NoError(t, a.Chat.SwitchSession(context.Background(), "s-2"))

	active := a.Chat.ActiveSession()
	require.Equal(t, "s-2", active.ID)
	messages := a.Chat.Messages()
	require.Len(t, messages, 2)
	require.True(t, messages[1].IsBot)
}

func TestChatSwitchToUnknownSession(t *testing.T) {
	t.Parallel()

	r, _ := chatBackend(t)
	a := newTestApp(t, r)
	require.NoError(t, a.Chat.Init(context.Background()))

	err := a.Chat.SwitchSession(context.Background(), "s-missing")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestChatSendAppendsExchangeAndAdoptsRename(t *testing.T) {
	t.Parallel()

	r, _ := chatBackend(t)
	a := newTestApp(t, r)
	require.NoError(t, a.Chat.Init(context.Background()))
	require.NoError(t, a.Chat.SwitchSession(context.Background(), "s-2"))

	require.NoError(t, a.Chat.Send(context.Background(), "rename me please"))

	messages := a.Chat.Messages()
	require.Len(t, messages, 4)
	require.Equal(t, "rename me please", messages[2].Content)
	require.Equal(t, "echo: rename me please", messages[3].Content)

	// No temporary placeholder survives the exchange.
	for _, msg := range messages {
		require.False(t, strings.HasPrefix(msg.ID, "temp-"))
	}

	require.Equal(t, "Renamed", a.Chat.ActiveSession().Title)
}

func TestChatSendCreatesSessionWhenNoneActive(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/chatbot/sessions", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"_id":"s-new","title":"New Chat"}`))
	})
	r.Post("/chatbot/sessions/{id}/messages", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"userMessage":{"_id":"m-u","content":"hi"},"botResponse":{"_id":"m-b","content":"hello!","isBot":true}}`))
	})

	a := newTestApp(t, r)

	require.NoError(t, a.Chat.Send(context.Background(), "hi"))

	active := a.Chat.ActiveSession()
	require.NotNil(t, active)
	require.Equal(t, "s-new", active.ID)
	require.Len(t, a.Chat.Messages(), 2)
}

func TestChatSendDiscardsStaleResultAfterSwitch(t *testing.T) {
	t.Parallel()

	r, sendRelease := chatBackend(t)
	a := newTestApp(t, r)
	require.NoError(t, a.Chat.Init(context.Background()))

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- a.Chat.Send(context.Background(), "slow question")
	}()

	// Wait for the optimistic placeholder, proving the send is in flight.
	require.Eventually(t, func() bool {
		for _, msg := range a.Chat.Messages() {
			if strings.HasPrefix(msg.ID, "temp-") {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.Chat.SwitchSession(context.Background(), "s-2"))
	close(sendRelease)

	require.ErrorIs(t, <-sendErr, model.ErrStaleResult)

	// The reply never leaks into the newly selected conversation.
	for _, msg := range a.Chat.Messages() {
		require.NotEqual(t, "echo: slow question", msg.Content)
		require.False(t, strings.HasPrefix(msg.ID, "temp-"))
	}
	require.Equal(t, "s-2", a.Chat.ActiveSession().ID)
}
