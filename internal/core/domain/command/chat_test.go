package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTextSender struct {
	replyCalls     []string
	notifyErrCalls []error
	replyErr       error
	notifyErr      error
}

func (m *mockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, text string) (int, error) {
	m.replyCalls = append(m.replyCalls, text)
	return 0, m.replyErr
}

func (m *mockTextSender) NotifyAndReturnError(_ context.Context, err error, _ *domain.Message) error {
	m.notifyErrCalls = append(m.notifyErrCalls, err)
	return m.notifyErr
}

type mockIntentResponder struct {
	replies  map[string]string
	received []string
}

func (m *mockIntentResponder) Respond(message string) string {
	m.received = append(m.received, message)
	return m.replies[message]
}

func (m *mockIntentResponder) Intents() []domain.Intent {
	return []domain.Intent{domain.Greeting, domain.Unknown}
}

func TestChat_Respond(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantReceived string
		wantReply    string
	}{
		{
			name:         "free text",
			text:         "hello",
			wantReceived: "hello",
			wantReply:    "Hello! How can I help you today?",
		},
		{
			name:         "trims whitespace",
			text:         "  hello  ",
			wantReceived: "hello",
			wantReply:    "Hello! How can I help you today?",
		},
		{
			name:         "strips chat command",
			text:         "/chat add 2 3",
			wantReceived: "add 2 3",
			wantReply:    "The result is 5.0.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			responder := &mockIntentResponder{replies: map[string]string{
				"hello":   "Hello! How can I help you today?",
				"add 2 3": "The result is 5.0.",
			}}
			sender := &mockTextSender{}
			transcript := service.NewTranscript(10)

			chat := NewChat(ChatParams{
				Responder:  responder,
				TextSender: sender,
				Transcript: transcript,
				Command:    "/chat",
			})
			assert.Equal(t, "/chat", chat.GetCommand())

			err := chat.Respond(t.Context(), time.Second, &domain.Message{ID: 1, ChatID: 7, Text: tc.text})

			require.NoError(t, err)
			assert.Equal(t, []string{tc.wantReceived}, responder.received)
			assert.Equal(t, []string{tc.wantReply}, sender.replyCalls)

			entries := transcript.Entries(7)
			require.Len(t, entries, 2)
			assert.Equal(t, domain.User, entries[0].Author)
			assert.Equal(t, tc.wantReceived, entries[0].Text)
			assert.Equal(t, domain.Bot, entries[1].Author)
			assert.Equal(t, tc.wantReply, entries[1].Text)
		})
	}
}

func TestChat_Respond_SendFails(t *testing.T) {
	sender := &mockTextSender{replyErr: errors.New("network down")}

	chat := NewChat(ChatParams{
		Responder:  &mockIntentResponder{},
		TextSender: sender,
		Transcript: service.NewTranscript(10),
		Command:    "/chat",
	})

	err := chat.Respond(t.Context(), time.Second, &domain.Message{ID: 1, ChatID: 1, Text: "hello"})

	require.ErrorIs(t, err, domain.ErrSendingReplyFailed)
	assert.ErrorContains(t, err, "network down")
}

func TestChat_Respond_RealResponder(t *testing.T) {
	sender := &mockTextSender{}
	responder := service.NewIntentResponder(service.IntentResponderParams{
		Normalizer: service.NewTextNormalizer(identityLemmatizer{}),
	})

	chat := NewChat(ChatParams{
		Responder:  responder,
		TextSender: sender,
		Transcript: service.NewTranscript(10),
	})

	err := chat.Respond(t.Context(), time.Second, &domain.Message{ChatID: 1, Text: "Can you do math and add numbers"})

	require.NoError(t, err)
	require.Len(t, sender.replyCalls, 1)
	assert.Contains(t, sender.replyCalls[0], "I can help with simple arithmetic")
}

type identityLemmatizer struct{}

func (identityLemmatizer) Lemma(word string) string {
	return word
}
