package zip

import (
	"archive/zip"
	"bytes"
)

// Entry is one file going into an archive.
type Entry struct {
	Filename string
	Data     []byte
}

// Archive bundles the entries into a zip and returns its bytes. Entries that
// fail to be added are skipped rather than aborting the archive.
func Archive(entries []Entry) []byte {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e.Filename)
		if err != nil {
			continue
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil
		}
	}
	_ = zw.Close()
	return buf.Bytes()
}
