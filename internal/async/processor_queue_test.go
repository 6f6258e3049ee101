package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (p *countingProcessor) ProcessDocument(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, id)
	return uuid.New(), nil
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func TestProcessorQueue_ProcessesEnqueuedJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(16))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 5, proc.count())
}

func TestProcessorQueue_EnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	assert.Equal(t, 0, proc.count())
}

func TestProcessorQueue_ShutdownIdempotent(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // second call must not panic on the closed channel
}
