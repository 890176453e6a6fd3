package localtime

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	expected := time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)

	type testCase struct {
		Raw      string
		Expected time.Time
	}

	testCases := []testCase{
		{Raw: "2024-01-15T08:30:00Z", Expected: expected},
		{Raw: "  2024-01-15T08:30:00Z\n", Expected: expected},
		{Raw: "2024-01-15T09:30:00+01:00", Expected: expected},
		{Raw: "2024-01-15T03:30:00-0500", Expected: expected},
		{Raw: "2024-01-15T08:30:00.250Z", Expected: expected.Add(250 * time.Millisecond)},
		{Raw: "2024-01-15T08:30:00", Expected: expected},
		{Raw: "2024-01-15T08:30", Expected: expected},
		{Raw: "2024-01-15 08:30:00", Expected: expected},
		{Raw: "2024-01-15 08:30:00 UTC", Expected: expected},
		{Raw: "2024-01-15 08:30:00.000000001 UTC", Expected: expected.Add(time.Nanosecond)},
		{Raw: "2024-01-15 08:30:00 +0000 UTC", Expected: expected},
		{Raw: "2024-01-15", Expected: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{Raw: "2024-01", Expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Raw: "Mon, 15 Jan 2024 08:30:00 GMT", Expected: expected},
		{Raw: "Mon, 15 Jan 2024 09:30:00 +0100", Expected: expected},
		{Raw: "Mon, 15 Jan 2024 03:30:00 EST", Expected: expected},
		{Raw: "Mon, 15 Jan 2024 00:30:00 PST", Expected: expected},
		{Raw: "15 Jan 2024 08:30:00 GMT", Expected: expected},
		{Raw: "Mon Jan 15 2024 09:30:00 GMT+0100 (Central European Standard Time)", Expected: expected},
		{Raw: "Mon Jan 15 08:30:00 2024", Expected: expected},
		{Raw: "January 15, 2024 08:30:00", Expected: expected},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			parsed, err := Parse(tc.Raw)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, parsed; !e.Equal(g) {
				t.Errorf("Parse(%q): expected '%v', got '%v'", tc.Raw, e, g)
			}

			if e, g := time.UTC, parsed.Location(); e != g {
				t.Errorf("parsed.Location(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	testCases := []string{
		"",
		"   ",
		"not-a-date",
		"2024-13-01T00:00:00Z",
		"2024-02-30",
		"1705307400000",
		"15/01/2024",
		"2024-01-15T25:00:00Z",
	}

	for _, raw := range testCases {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			if err == nil {
				t.Fatalf("Parse(%q): expected an error, got nil", raw)
			}

			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Parse(%q): expected ErrInvalidDate, got '%v'", raw, err)
			}
		})
	}
}
