package storage

import (
	"bytes"
	"context"
	"testing"
)

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	data := []byte("annual progress report")
	key, err := store.Save(context.Background(), "documents/2025/08/report.pdf", data)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key != "documents/2025/08/report.pdf" {
		t.Fatalf("unexpected key: %q", key)
	}

	got, err := store.Load(context.Background(), key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("loaded bytes differ: %q", got)
	}
}

func TestSanitizeKey_BlocksTraversal(t *testing.T) {
	cases := []struct {
		key string
		ok  bool
	}{
		{"documents/report.pdf", true},
		{"./documents/report.pdf", true},
		{"/documents/report.pdf", true},
		{"../secrets.env", false},
		{"documents/../../secrets.env", false},
		{"", false},
		{".", false},
	}
	for _, tc := range cases {
		_, err := sanitizeKey(tc.key)
		if tc.ok && err != nil {
			t.Errorf("sanitizeKey(%q): unexpected error %v", tc.key, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("sanitizeKey(%q): expected rejection", tc.key)
		}
	}
}
