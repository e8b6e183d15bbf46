// Package media turns uploaded files into data URLs the remote service stores inline.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrTooLarge   = errors.New("file exceeds upload limit")
	ErrEmpty      = errors.New("file is empty")
	ErrNotAllowed = errors.New("file type not allowed")
)

// Converter reads uploads up to MaxBytes and encodes them.
type Converter struct {
	MaxBytes int64
	// Allowed lists accepted MIME types (and their aliases); empty accepts anything.
	Allowed []string
}

// DataURL is an encoded upload.
type DataURL struct {
	MIME string `json:"mime"`
	Size int    `json:"size"`
	URL  string `json:"data_url"`
}

// Encode reads r fully and returns data:<mime>;base64,<payload>.
// The MIME type is sniffed from content, not taken from the client.
func (c Converter) Encode(r io.Reader) (DataURL, error) {
	limit := c.MaxBytes
	if limit <= 0 {
		limit = 5 << 20
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return DataURL{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return DataURL{}, ErrEmpty
	}
	if int64(len(data)) > limit {
		return DataURL{}, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}

	mt := mimetype.Detect(data)
	if len(c.Allowed) > 0 && !mimetype.EqualsAny(mt.String(), c.Allowed...) && !isAnyOf(mt, c.Allowed) {
		return DataURL{}, fmt.Errorf("%w: %s", ErrNotAllowed, mt.String())
	}

	mime, _, _ := strings.Cut(mt.String(), ";")
	return DataURL{
		MIME: mime,
		Size: len(data),
		URL:  "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

func isAnyOf(mt *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mt.Is(a) {
			return true
		}
	}
	return false
}
