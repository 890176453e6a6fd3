package localize

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) string {
	t.Helper()

	var stdout bytes.Buffer

	app := &cli.App{
		Name:     "pettymatters",
		Writer:   &stdout,
		Commands: []*cli.Command{Command()},
	}

	if err := app.Run(append([]string{"pettymatters", "localize"}, args...)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return stdout.String()
}

func TestCommandLocalizesFile(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "page.html")
	output := filepath.Join(dir, "page.localized.html")

	document := `<!-- generated -->
<!DOCTYPE html><html><head><title>Topics</title></head><body>
<table><tr><td data-utcdate="2024-01-15T08:30:00Z">2024-01-15T08:30:00Z</td><td data-utcdate="yesterday">yesterday</td></tr></table>
</body></html>`

	if err := os.WriteFile(input, []byte(document), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	runApp(t, "--lang", "en-US", "--tz", "America/New_York", "--output", output, input)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	localized := string(data)

	expectedParts := []string{
		"<!DOCTYPE html>",
		"<title>Topics</title>",
		`<td data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 3:30:00 AM</td>`,
		`<td data-utcdate="yesterday">Invalid Date</td>`,
	}

	for _, part := range expectedParts {
		if !strings.Contains(localized, part) {
			t.Errorf("output: expected '%s' in '%s'", part, localized)
		}
	}
}

func TestCommandWritesFragmentToStdout(t *testing.T) {
	input := filepath.Join(t.TempDir(), "fragment.html")

	if err := os.WriteFile(input, []byte(`<tr><td data-utcdate="2024-01-15T08:30:00Z"></td></tr>`), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	stdout := runApp(t, "--lang", "fr", "--tz", "Europe/Paris", input)

	if e, g := `<tr><td data-utcdate="2024-01-15T08:30:00Z">15/01/2024 09:30:00</td></tr>`, stdout; e != g {
		t.Errorf("stdout: expected '%s', got '%s'", e, g)
	}
}
