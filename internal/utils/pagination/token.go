package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// DefaultLimit and MaxLimit bound page sizes.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Cursor is the position of the last item of a page: its date and, to break ties, its id.
type Cursor struct {
	Date time.Time
	ID   string
}

// After reports whether the item at (date, id) sorts strictly after the cursor.
func (c Cursor) After(date time.Time, id string) bool {
	if date.Equal(c.Date) {
		return id > c.ID
	}
	return date.After(c.Date)
}

// EncodeToken creates an opaque token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.Date.Format(timeFormat), c.ID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return Cursor{Date: date, ID: parts[1]}, nil
}

// ClampLimit maps a requested page size into [1, MaxLimit], using DefaultLimit for 0.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Paginate returns the page of items that follows after (or the first page when after is
// nil) together with the cursor of the next page, which is nil on the last page. items must
// already be ordered by key.
func Paginate[T any](items []T, limit int, after *Cursor, key func(T) Cursor) ([]T, *Cursor) {
	limit = ClampLimit(limit)
	start := 0
	if after != nil {
		start = len(items)
		for i, item := range items {
			k := key(item)
			if after.After(k.Date, k.ID) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if end >= len(items) {
		return items[start:], nil
	}
	next := key(items[end-1])
	return items[start:end], &next
}
