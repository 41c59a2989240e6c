package photos

import (
	"context"
	"fmt"
	"strings"

	"github.com/sir_venger/inventory_lite/internal/config"
)

// New выбирает бэкенд по cfg.Photos.Backend: "dir" (по умолчанию), "memory" или "s3".
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Photos.Backend)) {
	case "", "dir":
		return NewDirStore(cfg.PhotosDir())
	case "memory":
		return NewMemoryStore(), nil
	case "s3":
		return NewS3Store(ctx, cfg.Photos.S3)
	default:
		return nil, fmt.Errorf("unknown photo backend %q", cfg.Photos.Backend)
	}
}
