package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/pkg/errors"
)

func TestWriteQueue(t *testing.T) {
	var (
		mutex   sync.Mutex
		applied []model.TopicID
	)

	handler := port.WriteHandlerFunc(func(ctx context.Context, op port.WriteOperation) error {
		createTopic, ok := op.(*port.CreateTopicOperation)
		if !ok {
			return errors.Errorf("unexpected operation '%s'", op.Type())
		}

		if createTopic.Topic.Title() == "fail" {
			return errors.New("failure")
		}

		if createTopic.Topic.Title() == "panic" {
			panic("boom")
		}

		mutex.Lock()
		defer mutex.Unlock()

		applied = append(applied, createTopic.Topic.ID())

		return nil
	})

	queue := NewWriteQueue(100, handler)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- queue.Run(ctx)
	}()

	titles := []string{"first", "fail", "second", "panic", "third"}
	expected := make([]model.TopicID, 0)

	for _, title := range titles {
		topic := model.NewTopic(title, "content", "jdoe@example.net")
		if title != "fail" && title != "panic" {
			expected = append(expected, topic.ID())
		}

		if err := queue.Enqueue(ctx, &port.CreateTopicOperation{Topic: topic}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("queue.Run(): did not return after cancellation")
	}

	mutex.Lock()
	defer mutex.Unlock()

	if e, g := len(expected), len(applied); e != g {
		t.Fatalf("len(applied): expected '%v', got '%v'", e, g)
	}

	for i := range expected {
		if e, g := expected[i], applied[i]; e != g {
			t.Errorf("applied[%d]: expected '%v', got '%v'", i, e, g)
		}
	}

	err := queue.Enqueue(context.Background(), &port.CreateTopicOperation{Topic: model.NewTopic("late", "content", "jdoe@example.net")})
	if !errors.Is(err, port.ErrQueueClosed) {
		t.Errorf("queue.Enqueue() after shutdown: expected port.ErrQueueClosed, got '%v'", err)
	}
}

func TestWriteQueueEnqueueHonorsContext(t *testing.T) {
	queue := NewWriteQueue(1, port.WriteHandlerFunc(func(ctx context.Context, op port.WriteOperation) error {
		return nil
	}))

	op := &port.CreateTopicOperation{Topic: model.NewTopic("title", "content", "jdoe@example.net")}

	if err := queue.Enqueue(context.Background(), op); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// No worker is running and the single slot is taken
	if err := queue.Enqueue(ctx, op); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("queue.Enqueue() on full queue: expected context.DeadlineExceeded, got '%v'", err)
	}
}
