package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/pettymatters/internal/adapter/memory"
	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestStore(t *testing.T) {
	testsuite.TestForumStores(t, func(t *testing.T) (*testsuite.Stores, error) {
		store := NewStore(memory.NewStore(), 100, time.Minute)

		return &testsuite.Stores{
			Topics:   store,
			Comments: store,
		}, nil
	})
}

type countingBackend struct {
	Backend
	queries int
}

func (b *countingBackend) QueryTopics(ctx context.Context, opts model.ListOptions) (*model.Page[model.Topic], error) {
	b.queries++
	return b.Backend.QueryTopics(ctx, opts)
}

func TestStoreCachesTopicPages(t *testing.T) {
	ctx := context.Background()

	backend := &countingBackend{Backend: memory.NewStore()}
	store := NewStore(backend, 100, time.Minute)

	opts := model.ListOptions{PageNumber: 1, PageSize: 10}

	for range 3 {
		if _, err := store.QueryTopics(ctx, opts); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := 1, backend.queries; e != g {
		t.Errorf("backend.queries: expected '%v', got '%v'", e, g)
	}

	// Same options once normalized
	if _, err := store.QueryTopics(ctx, model.ListOptions{PageSize: 10}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, backend.queries; e != g {
		t.Errorf("backend.queries: expected '%v', got '%v'", e, g)
	}

	if err := store.SaveTopic(ctx, model.NewTopic("title", "content", "jdoe@example.net")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	page, err := store.QueryTopics(ctx, opts)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, backend.queries; e != g {
		t.Errorf("backend.queries: expected '%v', got '%v'", e, g)
	}

	if e, g := int64(1), page.TotalCount; e != g {
		t.Errorf("page.TotalCount: expected '%v', got '%v'", e, g)
	}
}

func TestStoreExpiresTopicPages(t *testing.T) {
	ctx := context.Background()

	backend := &countingBackend{Backend: memory.NewStore()}
	store := NewStore(backend, 100, 50*time.Millisecond)

	if _, err := store.QueryTopics(ctx, model.ListOptions{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	time.Sleep(200 * time.Millisecond)

	if _, err := store.QueryTopics(ctx, model.ListOptions{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, backend.queries; e != g {
		t.Errorf("backend.queries: expected '%v', got '%v'", e, g)
	}
}
