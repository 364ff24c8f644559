package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages reports how many pages a PDF has. The reader panics on some
// malformed inputs, so those come back as errors too.
func CountPDFPages(data []byte) (pages int, err error) {
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		return 0, fmt.Errorf("missing PDF header")
	}

	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("reading PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("opening PDF: %w", err)
	}
	return reader.NumPage(), nil
}
