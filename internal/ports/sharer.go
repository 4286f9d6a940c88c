package ports

import "context"

// Sharer is the native share capability with its clipboard-style fallback
type Sharer interface {
	Share(ctx context.Context, title, text string) error
}
