package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchive_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Filename: "report-2025.pdf", Data: []byte("progress report")},
		{Filename: "photo.jpg", Data: []byte{0xff, 0xd8, 0xff}},
	}

	archived := Archive(entries)
	if len(archived) == 0 {
		t.Fatal("empty archive")
	}

	reader, err := zip.NewReader(bytes.NewReader(archived), int64(len(archived)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(reader.File) != 2 {
		t.Fatalf("expected 2 files, got %d", len(reader.File))
	}
	for i, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if f.Name != entries[i].Filename || !bytes.Equal(data, entries[i].Data) {
			t.Fatalf("entry %d mismatch: %s", i, f.Name)
		}
	}
}
