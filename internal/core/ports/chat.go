package ports

import (
	"context"
	"time"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// ChatReplyJob asks for a bot reply to be appended to a conversation.
type ChatReplyJob struct {
	ConversationID string
	MessageID      string
	Text           string
	// Due is when the reply becomes visible.
	Due time.Time
}

// ChatReplier produces and appends the reply for a job. It is called from
// the dispatcher's workers.
type ChatReplier interface {
	Reply(ctx context.Context, job ChatReplyJob) error
}

// SendResult is returned by ChatService.Send.
type SendResult struct {
	Message *domain.ChatMessage
	// Duplicate is true when the idempotency key was already seen and the
	// message was not appended again.
	Duplicate bool
}

type ChatService interface {
	Transcript(ctx context.Context, conversationID string) []domain.ChatMessage
	Send(ctx context.Context, conversationID, text, idempotencyKey string) (*SendResult, error)
}
