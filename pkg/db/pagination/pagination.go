// Package pagination implements cursor-based list pagination shared by the
// repositories. Cursors encode the (created_at, id) sort key of the last row.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Pagination struct {
	PageToken string `form:"page_token" json:"page_token"`
	PageSize  int    `form:"page_size" json:"page_size"`
}

type PageInfo struct {
	NextPageToken string `json:"next_page_token,omitempty"`
	HasMore       bool   `json:"has_more"`
}

type Cursor struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

var ErrInvalidCursor = errors.New("pagination: invalid page token")

func EncodeCursor(c Cursor) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}

// Apply constrains the query to rows after the cursor and fetches one extra
// row so the caller can detect whether more pages exist.
func Apply(query *gorm.DB, page Pagination) (*gorm.DB, error) {
	if page.PageToken != "" {
		cursor, err := DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		createdAt, err := time.Parse(time.RFC3339, cursor.CreatedAt)
		if err != nil {
			return nil, ErrInvalidCursor
		}
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			createdAt, createdAt, cursor.ID,
		)
	}
	if page.PageSize > 0 {
		query = query.Limit(page.PageSize + 1)
	}
	return query.Order("created_at DESC, id DESC"), nil
}

// BuildCursorPageInfo inspects an over-fetched result set (page size + 1
// rows) and produces the next-page token from the last visible item.
func BuildCursorPageInfo[T any](items []T, pageSize int, cursorOf func(T) string) *PageInfo {
	if pageSize <= 0 {
		return nil
	}
	info := &PageInfo{}
	if len(items) > pageSize {
		info.HasMore = true
		info.NextPageToken = cursorOf(items[pageSize-1])
	}
	return info
}

// Trim drops the extra over-fetched row.
func Trim[T any](items []T, pageSize int) []T {
	if pageSize > 0 && len(items) > pageSize {
		return items[:pageSize]
	}
	return items
}
