package model

import (
	"testing"
	"time"
)

func TestNewTopic(t *testing.T) {
	before := time.Now().UTC()

	topic := NewTopic("Hello", "World", "jdoe@example.net")

	if topic.ID() == "" {
		t.Errorf("topic.ID(): expected a generated id")
	}

	if e, g := int64(0), topic.Upvotes(); e != g {
		t.Errorf("topic.Upvotes(): expected '%v', got '%v'", e, g)
	}

	if e, g := int64(0), topic.Downvotes(); e != g {
		t.Errorf("topic.Downvotes(): expected '%v', got '%v'", e, g)
	}

	if !topic.UpdatedAt().IsZero() {
		t.Errorf("topic.UpdatedAt(): expected zero time, got '%v'", topic.UpdatedAt())
	}

	if since := topic.CreatedAt().Sub(before); since < 0 || since > 3*time.Second {
		t.Errorf("topic.CreatedAt(): expected a recent creation time, got '%v'", topic.CreatedAt())
	}

	if e, g := time.UTC, topic.CreatedAt().Location(); e != g {
		t.Errorf("topic.CreatedAt().Location(): expected '%v', got '%v'", e, g)
	}
}

func TestNewCommentIDsAreUnique(t *testing.T) {
	topic := NewTopic("Hello", "World", "jdoe@example.net")

	first := NewComment(topic.ID(), "first", "jdoe@example.net")
	second := NewComment(topic.ID(), "second", "jdoe@example.net")

	if first.ID() == second.ID() {
		t.Errorf("comment ids: expected distinct ids, got '%v' twice", first.ID())
	}

	if e, g := topic.ID(), first.TopicID(); e != g {
		t.Errorf("first.TopicID(): expected '%v', got '%v'", e, g)
	}
}

func TestUsername(t *testing.T) {
	type testCase struct {
		User     User
		Expected string
	}

	testCases := []testCase{
		{User: nil, Expected: AnonymousSubject},
		{User: AnonymousUser(), Expected: AnonymousSubject},
		{User: NewUser("oidc", "1234", "jdoe@example.net", "John Doe"), Expected: "jdoe@example.net"},
		{User: NewUser("oidc", "1234", "", "John Doe"), Expected: "1234"},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, Username(tc.User); e != g {
			t.Errorf("Username(%v): expected '%v', got '%v'", tc.User, e, g)
		}
	}
}
