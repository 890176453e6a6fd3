package testsuite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

type Stores struct {
	Topics   port.TopicStore
	Comments port.CommentStore
}

func TestForumStores(t *testing.T, factory func(t *testing.T) (*Stores, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, stores *Stores) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "SaveAndGetTopic",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				topic := model.NewTopic("Petty", "Matters", "jdoe@example.net")

				if err := stores.Topics.SaveTopic(ctx, topic); err != nil {
					return errors.WithStack(err)
				}

				stored, err := stores.Topics.GetTopic(ctx, topic.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := topic.ID(), stored.ID(); e != g {
					t.Errorf("stored.ID(): expected '%v', got '%v'", e, g)
				}

				if e, g := topic.Title(), stored.Title(); e != g {
					t.Errorf("stored.Title(): expected '%v', got '%v'", e, g)
				}

				if e, g := topic.Content(), stored.Content(); e != g {
					t.Errorf("stored.Content(): expected '%v', got '%v'", e, g)
				}

				if e, g := topic.Author(), stored.Author(); e != g {
					t.Errorf("stored.Author(): expected '%v', got '%v'", e, g)
				}

				if e, g := topic.CreatedAt(), stored.CreatedAt(); !e.Equal(g) {
					t.Errorf("stored.CreatedAt(): expected '%v', got '%v'", e, g)
				}

				if !stored.UpdatedAt().IsZero() {
					t.Errorf("stored.UpdatedAt(): expected zero time, got '%v'", stored.UpdatedAt())
				}

				return nil
			},
		},
		{
			Name: "GetMissingTopic",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				_, err := stores.Topics.GetTopic(ctx, model.NewTopicID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTopic(): expected port.ErrNotFound, got '%v'", err)
				}

				return nil
			},
		},
		{
			Name: "QueryTopicsPaging",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				topics, err := loadTestTopics(ctx, stores, 25)
				if err != nil {
					return errors.WithStack(err)
				}

				page, err := stores.Topics.QueryTopics(ctx, model.ListOptions{
					PageNumber: 2,
					PageSize:   10,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("page: %s", spew.Sdump(page.PageNumber, page.PageSize, page.TotalCount))

				if e, g := int64(len(topics)), page.TotalCount; e != g {
					t.Errorf("page.TotalCount: expected '%v', got '%v'", e, g)
				}

				if e, g := 10, len(page.Items); e != g {
					t.Fatalf("len(page.Items): expected '%v', got '%v'", e, g)
				}

				if e, g := 3, page.TotalPages(); e != g {
					t.Errorf("page.TotalPages(): expected '%v', got '%v'", e, g)
				}

				// Newest first: the second page starts with the 11th most recent topic
				if e, g := topics[len(topics)-11].ID(), page.Items[0].ID(); e != g {
					t.Errorf("page.Items[0].ID(): expected '%v', got '%v'", e, g)
				}

				return nil
			},
		},
		{
			Name: "QueryTopicsOrdering",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				topics, err := loadTestTopics(ctx, stores, 5)
				if err != nil {
					return errors.WithStack(err)
				}

				page, err := stores.Topics.QueryTopics(ctx, model.ListOptions{
					OrderBy:  port.TopicOrderByCreationTime,
					Ordering: model.OrderingAscending,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := len(topics), len(page.Items); e != g {
					t.Fatalf("len(page.Items): expected '%v', got '%v'", e, g)
				}

				for i, topic := range topics {
					if e, g := topic.ID(), page.Items[i].ID(); e != g {
						t.Errorf("page.Items[%d].ID(): expected '%v', got '%v'", i, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "QueryTopicsFilterByAuthor",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				if _, err := loadTestTopics(ctx, stores, 6); err != nil {
					return errors.WithStack(err)
				}

				page, err := stores.Topics.QueryTopics(ctx, model.ListOptions{
					Filters: map[string]string{
						port.TopicFilterCreatedBy: "author-1@example.net",
					},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(2), page.TotalCount; e != g {
					t.Errorf("page.TotalCount: expected '%v', got '%v'", e, g)
				}

				for _, topic := range page.Items {
					if e, g := "author-1@example.net", topic.Author(); e != g {
						t.Errorf("topic.Author(): expected '%v', got '%v'", e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "QueryCommentsByTopic",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				topics, err := loadTestTopics(ctx, stores, 2)
				if err != nil {
					return errors.WithStack(err)
				}

				for i := range 3 {
					comment := newTestComment(topics[0].ID(), i)
					if err := stores.Comments.SaveComment(ctx, comment); err != nil {
						return errors.WithStack(err)
					}
				}

				if err := stores.Comments.SaveComment(ctx, newTestComment(topics[1].ID(), 0)); err != nil {
					return errors.WithStack(err)
				}

				page, err := stores.Comments.QueryComments(ctx, model.ListOptions{
					Filters: map[string]string{
						port.CommentFilterTopicID: string(topics[0].ID()),
					},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), page.TotalCount; e != g {
					t.Errorf("page.TotalCount: expected '%v', got '%v'", e, g)
				}

				for _, comment := range page.Items {
					if e, g := topics[0].ID(), comment.TopicID(); e != g {
						t.Errorf("comment.TopicID(): expected '%v', got '%v'", e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "DeleteTopicRemovesComments",
			Run: func(t *testing.T, ctx context.Context, stores *Stores) error {
				topics, err := loadTestTopics(ctx, stores, 1)
				if err != nil {
					return errors.WithStack(err)
				}

				topicID := topics[0].ID()

				if err := stores.Comments.SaveComment(ctx, newTestComment(topicID, 0)); err != nil {
					return errors.WithStack(err)
				}

				if err := stores.Topics.DeleteTopic(ctx, topicID); err != nil {
					return errors.WithStack(err)
				}

				if _, err := stores.Topics.GetTopic(ctx, topicID); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTopic(): expected port.ErrNotFound, got '%v'", err)
				}

				page, err := stores.Comments.QueryComments(ctx, model.ListOptions{
					Filters: map[string]string{
						port.CommentFilterTopicID: string(topicID),
					},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(0), page.TotalCount; e != g {
					t.Errorf("page.TotalCount: expected '%v', got '%v'", e, g)
				}

				if err := stores.Topics.DeleteTopic(ctx, topicID); err != nil {
					t.Errorf("DeleteTopic() on missing topic: expected nil, got '%+v'", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			stores, err := factory(t)
			if err != nil {
				t.Fatalf("could not create stores: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, stores); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}

var epoch = time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)

// loadTestTopics saves total topics, one minute apart, alternating between
// three authors. Topics are returned oldest first.
func loadTestTopics(ctx context.Context, stores *Stores, total int) ([]model.Topic, error) {
	topics := make([]model.Topic, 0, total)

	for i := range total {
		topic := model.NewReadOnlyTopic(
			model.NewTopicID(),
			fmt.Sprintf("Topic #%d", i),
			fmt.Sprintf("Content of topic #%d", i),
			fmt.Sprintf("author-%d@example.net", i%3),
			0, 0,
			epoch.Add(time.Duration(i)*time.Minute),
			time.Time{},
		)

		if err := stores.Topics.SaveTopic(ctx, topic); err != nil {
			return nil, errors.WithStack(err)
		}

		topics = append(topics, topic)
	}

	return topics, nil
}

func newTestComment(topicID model.TopicID, i int) model.Comment {
	return model.NewReadOnlyComment(
		model.NewCommentID(),
		topicID,
		fmt.Sprintf("Comment #%d", i),
		"commenter@example.net",
		0, 0,
		epoch.Add(time.Duration(i)*time.Second),
		time.Time{},
	)
}
