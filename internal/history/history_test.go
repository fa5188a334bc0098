package history

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestAddAndLatestNewestFirst(t *testing.T) {
	h := New(true, 10)
	const user = int64(1)

	h.Add(user, "first", "de", []string{"en", "ru", "hy"})
	h.Add(user, "second", "en", []string{"de"})

	records := h.Latest(user, 10)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Snippet != "second" || records[1].Snippet != "first" {
		t.Errorf("order = [%s %s], want newest first", records[0].Snippet, records[1].Snippet)
	}
	if records[1].Source != "de" || len(records[1].Targets) != 3 {
		t.Errorf("record = %+v", records[1])
	}
}

func TestDepthBound(t *testing.T) {
	h := New(true, 3)
	const user = int64(5)

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		h.Add(user, text, "en", []string{"de"})
	}

	records := h.Latest(user, 10)
	if len(records) != 3 {
		t.Fatalf("got %d records, want the depth bound of 3", len(records))
	}
	if records[0].Snippet != "e" || records[2].Snippet != "c" {
		t.Errorf("kept records %v, want the newest three", records)
	}
}

func TestSnippetShortening(t *testing.T) {
	h := New(true, 5)
	const user = int64(9)

	long := strings.Repeat("я", 120)
	h.Add(user, long, "ru", []string{"en"})

	records := h.Latest(user, 1)
	if len(records) != 1 {
		t.Fatal("record not stored")
	}
	snippet := records[0].Snippet
	if !strings.HasSuffix(snippet, "...") {
		t.Errorf("snippet %q not shortened", snippet)
	}
	if got := utf8.RuneCountInString(snippet); got != 80 {
		t.Errorf("snippet length = %d runes, want 80", got)
	}

	h.Add(user, "line\nbreaks\nhere", "en", []string{"de"})
	records = h.Latest(user, 1)
	if strings.Contains(records[0].Snippet, "\n") {
		t.Errorf("snippet %q kept newlines", records[0].Snippet)
	}
}

func TestDisabledHistoryKeepsNothing(t *testing.T) {
	h := New(false, 10)
	const user = int64(2)

	h.Add(user, "hello", "en", []string{"de"})

	if h.Enabled() {
		t.Error("Enabled() = true for disabled history")
	}
	if records := h.Latest(user, 10); len(records) != 0 {
		t.Errorf("disabled history returned %d records", len(records))
	}
}

func TestLatestRespectsRequestedLimit(t *testing.T) {
	h := New(true, 10)
	const user = int64(3)

	for _, text := range []string{"a", "b", "c", "d"} {
		h.Add(user, text, "en", []string{"de"})
	}

	if records := h.Latest(user, 2); len(records) != 2 {
		t.Errorf("Latest(2) returned %d records", len(records))
	}
}

func TestUsersAreIsolated(t *testing.T) {
	h := New(true, 10)

	h.Add(1, "mine", "en", []string{"de"})

	if records := h.Latest(2, 10); len(records) != 0 {
		t.Errorf("user 2 sees %d foreign records", len(records))
	}
}
