package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sir_venger/inventory_lite/internal/logging"
	"github.com/sir_venger/inventory_lite/internal/models"
)

// Document — JSON-файл со всей коллекцией. Пишется целиком при каждом сохранении.
type Document struct {
	path string
	log  logging.Logger
}

func NewDocument(path string, log logging.Logger) *Document {
	return &Document{path: path, log: log}
}

// Load читает коллекцию с диска.
// Если файла нет, создаёт пустой документ. Если JSON битый, пишет предупреждение
// и возвращает пустую коллекцию; сам файл не трогает, его перезапишет первое сохранение.
func (d *Document) Load(ctx context.Context) ([]models.Item, error) {
	b, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			items := []models.Item{}
			if err := d.Save(ctx, items); err != nil {
				return nil, err
			}
			return items, nil
		}
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		d.log.Warn(ctx, "inventory document is malformed, starting with empty collection",
			"path", d.path, "error", err)
		return []models.Item{}, nil
	}
	if doc.Items == nil {
		doc.Items = []models.Item{}
	}

	return doc.Items, nil
}

// Save перезаписывает документ целиком.
func (d *Document) Save(_ context.Context, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}

	b, err := json.MarshalIndent(models.Document{Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}

	if err := os.WriteFile(d.path, b, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
