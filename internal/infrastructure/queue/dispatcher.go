package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes chat reply jobs to a fixed set of workers using
// consistent hashing on the conversation id, so replies within one
// conversation are appended in the order their messages were sent.
type Dispatcher struct {
	workers []chan ports.ChatReplyJob
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ChatReplyJob, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ChatReplyJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context, replier ports.ChatReplier) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch, replier)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a job to the worker responsible for its conversation. It
// never blocks: a full shard rejects the job with domain.ErrChatBusy.
func (d *Dispatcher) Enqueue(job ports.ChatReplyJob) error {
	idx := d.shardIndex(job.ConversationID)
	select {
	case d.workers[idx] <- job:
	default:
		metrics.ChatReplyErrorsTotal.Inc()
		return fmt.Errorf("%w: reply shard %d is full", domain.ErrChatBusy, idx)
	}
	metrics.ChatQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a conversation id deterministically to a worker index.
func (d *Dispatcher) shardIndex(conversationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(conversationID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ChatReplyJob, replier ports.ChatReplier) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.ChatQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := replier.Reply(ctx, job); err != nil {
				if ctx.Err() != nil {
					return
				}
				metrics.ChatReplyErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("conversation", job.ConversationID).
					Int("worker_id", id).
					Msg("chat reply failed")
			}
		}
	}
}
