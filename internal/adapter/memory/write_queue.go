package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/bornholm/pettymatters/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	writeStatusSucceeded = "succeeded"
	writeStatusFailed    = "failed"
)

// WriteQueue buffers write operations in a bounded channel. Operations are
// applied in submission order by a single worker started with Run.
type WriteQueue struct {
	operations chan port.WriteOperation
	handler    port.WriteHandler

	done      chan struct{}
	closeOnce sync.Once
}

// Enqueue implements port.WriteQueue.
func (q *WriteQueue) Enqueue(ctx context.Context, op port.WriteOperation) error {
	select {
	case <-q.done:
		return errors.WithStack(port.ErrQueueClosed)
	default:
	}

	select {
	case q.operations <- op:
		metrics.QueuedWrites.Inc()
		return nil
	case <-q.done:
		return errors.WithStack(port.ErrQueueClosed)
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Run applies queued operations until the context is canceled. Operations
// already buffered are applied before Run returns. A failing operation is
// logged and does not stop the worker.
func (q *WriteQueue) Run(ctx context.Context) error {
	for {
		select {
		case op := <-q.operations:
			q.apply(ctx, op)
		case <-ctx.Done():
			q.closeOnce.Do(func() {
				close(q.done)
			})

			slog.DebugContext(ctx, "draining write queue", slog.Int("pending", len(q.operations)))

			drainCtx := context.WithoutCancel(ctx)
			for {
				select {
				case op := <-q.operations:
					q.apply(drainCtx, op)
				default:
					return nil
				}
			}
		}
	}
}

func (q *WriteQueue) apply(ctx context.Context, op port.WriteOperation) {
	metrics.QueuedWrites.Dec()

	ctx = slogx.WithAttrs(ctx, slog.String("operation", string(op.Type())))

	status := writeStatusSucceeded

	defer func() {
		if recovered := recover(); recovered != nil {
			err, ok := recovered.(error)
			if !ok {
				err = errors.Errorf("%+v", recovered)
			}

			slog.ErrorContext(ctx, "recovered panic while applying write operation", slogx.Error(errors.WithStack(err)))
			status = writeStatusFailed
		}

		metrics.ProcessedWrites.With(prometheus.Labels{
			metrics.LabelOperation: string(op.Type()),
			metrics.LabelStatus:    status,
		}).Inc()
	}()

	slog.DebugContext(ctx, "applying write operation")

	if err := q.handler.Handle(ctx, op); err != nil {
		slog.ErrorContext(ctx, "could not apply write operation", slogx.Error(errors.WithStack(err)))
		status = writeStatusFailed
	}
}

func NewWriteQueue(capacity int, handler port.WriteHandler) *WriteQueue {
	return &WriteQueue{
		operations: make(chan port.WriteOperation, max(capacity, 1)),
		handler:    handler,
		done:       make(chan struct{}),
	}
}

var _ port.WriteQueue = &WriteQueue{}

// DirectQueue applies operations synchronously on Enqueue.
type DirectQueue struct {
	handler port.WriteHandler
}

// Enqueue implements port.WriteQueue.
func (q *DirectQueue) Enqueue(ctx context.Context, op port.WriteOperation) error {
	if err := q.handler.Handle(ctx, op); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewDirectQueue(handler port.WriteHandler) *DirectQueue {
	return &DirectQueue{
		handler: handler,
	}
}

var _ port.WriteQueue = &DirectQueue{}
