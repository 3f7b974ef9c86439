package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/pkg/latency"
	"github.com/researchnexus/nexus/internal/pkg/metrics"
)

const greeting = "Hello! I'm ResearchNexus AI assistant. How can I help you today?"

// botResponses is the fixed pool replies are drawn from.
var botResponses = []string{
	"I'd be happy to help you find research on that topic. Can you provide more specific details about what you're looking for?",
	"Great question! The premium insights section has several papers related to that. Would you like me to suggest some specific ones?",
	"You can upload your research by clicking the 'Upload Research' button in the navbar. Would you like me to walk you through the process?",
	"Based on your interests, I'd recommend checking out our latest papers in women's health research. They cover several breakthrough findings.",
	"If you're looking to monetize your research, our platform offers various options. Would you like to learn more about our pricing models?",
}

// DedupChecker abstracts the idempotency store (memory or Redis). Claim
// must be atomic: of several concurrent claims for one key, exactly one
// reports true.
type DedupChecker interface {
	Claim(ctx context.Context, conversationID, key string) (bool, error)
	Release(ctx context.Context, conversationID, key string) error
}

// ReplyQueue schedules reply jobs. Enqueue must not block.
type ReplyQueue interface {
	Enqueue(job ports.ChatReplyJob) error
}

// ChatOptions tunes the scripted responder. Zero values pick defaults.
type ChatOptions struct {
	ReplyDelay time.Duration
	// Pick returns an index in [0, n). Defaults to math/rand.
	Pick func(n int) int
	Now  func() time.Time
}

type conversation struct {
	messages []domain.ChatMessage
	lastUsed time.Time
}

// ChatService is a scripted assistant: it keeps each conversation's
// transcript in memory and answers every message with a canned reply after
// a fixed delay. Nothing survives a restart.
type ChatService struct {
	queue ReplyQueue
	dedup DedupChecker
	opts  ChatOptions
	log   zerolog.Logger

	mu            sync.Mutex
	conversations map[string]*conversation
}

func NewChatService(queue ReplyQueue, dedup DedupChecker, opts ChatOptions, log zerolog.Logger) *ChatService {
	if opts.Pick == nil {
		opts.Pick = rand.Intn
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ChatService{
		queue:         queue,
		dedup:         dedup,
		opts:          opts,
		log:           log,
		conversations: make(map[string]*conversation),
	}
}

func (s *ChatService) greeting() domain.ChatMessage {
	return domain.ChatMessage{
		ID:        "1",
		Text:      greeting,
		Sender:    domain.SenderBot,
		Timestamp: s.opts.Now().UTC(),
	}
}

// Transcript returns a copy of the conversation. A conversation nobody has
// written to yet is just the greeting and is not retained.
func (s *ChatService) Transcript(_ context.Context, conversationID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[conversationID]
	if !ok {
		return []domain.ChatMessage{s.greeting()}
	}
	c.lastUsed = s.opts.Now()
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// appendLocked adds msg, starting the conversation with the greeting on
// first use.
func (s *ChatService) appendLocked(conversationID string, msg domain.ChatMessage) {
	c, ok := s.conversations[conversationID]
	if !ok {
		c = &conversation{messages: []domain.ChatMessage{s.greeting()}}
		s.conversations[conversationID] = c
	}
	c.messages = append(c.messages, msg)
	c.lastUsed = s.opts.Now()
}

// Send appends the user's message and schedules the bot's reply. A full
// reply queue rejects the message with domain.ErrChatBusy and releases its
// idempotency key so the client can retry.
func (s *ChatService) Send(ctx context.Context, conversationID, text, idempotencyKey string) (*ports.SendResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	claimed := false
	if idempotencyKey != "" {
		first, err := s.dedup.Claim(ctx, conversationID, idempotencyKey)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("conversation", conversationID).Msg("dedup check failed, sending anyway")
		case !first:
			s.log.Debug().Str("conversation", conversationID).Str("idempotency_key", idempotencyKey).Msg("duplicate message skipped")
			return &ports.SendResult{Duplicate: true}, nil
		default:
			claimed = true
		}
	}

	now := s.opts.Now().UTC()
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    domain.SenderUser,
		Timestamp: now,
	}
	job := ports.ChatReplyJob{
		ConversationID: conversationID,
		MessageID:      msg.ID,
		Text:           text,
		Due:            now.Add(s.opts.ReplyDelay),
	}

	// The lock spans the enqueue so the reply cannot land before msg.
	s.mu.Lock()
	if err := s.queue.Enqueue(job); err != nil {
		s.mu.Unlock()
		if claimed {
			if rerr := s.dedup.Release(ctx, conversationID, idempotencyKey); rerr != nil {
				s.log.Warn().Err(rerr).Str("conversation", conversationID).Msg("failed to release dedup key")
			}
		}
		return nil, err
	}
	s.appendLocked(conversationID, msg)
	s.mu.Unlock()
	metrics.ChatMessagesTotal.WithLabelValues(string(domain.SenderUser)).Inc()

	return &ports.SendResult{Message: &msg}, nil
}

// Sweep forgets conversations untouched for longer than idle and reports
// how many were dropped.
func (s *ChatService) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.opts.Now().Add(-idle)
	n := 0
	for id, c := range s.conversations {
		if c.lastUsed.Before(cutoff) {
			delete(s.conversations, id)
			n++
		}
	}
	return n
}

// Reply waits until the job is due and appends one canned response. It is
// called by the dispatcher workers.
func (s *ChatService) Reply(ctx context.Context, job ports.ChatReplyJob) error {
	if err := latency.Wait(ctx, job.Due.Sub(s.opts.Now())); err != nil {
		return err
	}

	reply := domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      botResponses[s.opts.Pick(len(botResponses))],
		Sender:    domain.SenderBot,
		Timestamp: s.opts.Now().UTC(),
	}
	s.mu.Lock()
	s.appendLocked(job.ConversationID, reply)
	s.mu.Unlock()
	metrics.ChatMessagesTotal.WithLabelValues(string(domain.SenderBot)).Inc()

	s.log.Debug().
		Str("conversation", job.ConversationID).
		Str("in_reply_to", job.MessageID).
		Msg("bot replied")
	return nil
}
