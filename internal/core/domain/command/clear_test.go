package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/service"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClear_Respond_ClearsTranscriptAndReplies(t *testing.T) {
	transcript := service.NewTranscript(10)
	transcript.Append(101, domain.User, "hello")
	transcript.Append(101, domain.Bot, "Hello! How can I help you today?")
	transcript.Append(202, domain.User, "other chat")

	sender := &mockTextSender{}
	cc := NewClear(transcript, sender, "/clear")
	assert.Equal(t, "/clear", cc.GetCommand())

	err := cc.Respond(t.Context(), time.Second, &domain.Message{ID: 1, ChatID: 101})

	require.NoError(t, err)
	assert.Empty(t, transcript.Entries(101))
	assert.Len(t, transcript.Entries(202), 1)
	assert.Equal(t, []string{"Transcript cleared."}, sender.replyCalls)
}

func TestClear_Respond_EmptyTranscript(t *testing.T) {
	sender := &mockTextSender{}
	cc := NewClear(service.NewTranscript(10), sender, "/clear")

	err := cc.Respond(t.Context(), time.Second, &domain.Message{ID: 2, ChatID: 303})

	require.NoError(t, err)
	assert.Equal(t, []string{"Transcript cleared."}, sender.replyCalls)
}

func TestClear_Respond_SendReplyFails(t *testing.T) {
	sender := &mockTextSender{
		replyErr:  errors.New("send failure"),
		notifyErr: errors.New("notify failure"),
	}
	cc := NewClear(service.NewTranscript(10), sender, "/clear")

	err := cc.Respond(t.Context(), time.Second, &domain.Message{ID: 3, ChatID: 101})

	require.Error(t, err)
	assert.Len(t, sender.notifyErrCalls, 1)
}
