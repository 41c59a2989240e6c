package inventory

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sir_venger/inventory_lite/internal/logging"
	"github.com/sir_venger/inventory_lite/internal/models"
)

type (
	// Storage — долговременное хранилище коллекции и файлов фото.
	Storage interface {
		Load(ctx context.Context) ([]models.Item, error)
		Save(ctx context.Context, items []models.Item) error
		WritePhoto(ctx context.Context, r io.Reader, ext string) (string, error)
		DeletePhoto(ctx context.Context, name string) error
		ReadPhoto(ctx context.Context, name string) (io.ReadCloser, error)
	}

	// Service объединяет операции над записями инвентаря.
	Service interface {
		Create(ctx context.Context, req models.CreateRequest) (models.ItemView, error)
		List(ctx context.Context) []models.ItemView
		Get(ctx context.Context, id string) (models.ItemView, error)
		UpdateMetadata(ctx context.Context, id, name, description string) (models.ItemView, error)
		UpdatePhoto(ctx context.Context, id string, photo *models.PhotoUpload) (models.ItemView, error)
		Delete(ctx context.Context, id string) error
		PhotoStream(ctx context.Context, id string) (io.ReadCloser, string, error)
		Search(ctx context.Context, id string, withPhoto bool) (models.SearchResult, error)
		Count() int
		SweepPhotos(ctx context.Context, sweep PhotoSweeper) (int, error)
	}
)

// PhotoSweeper удаляет файлы фото, которых нет в keep.
type PhotoSweeper func(ctx context.Context, keep map[string]struct{}) (int, error)

type Deps struct {
	Storage Storage
	Log     logging.Logger
}

// Inventory держит коллекцию в памяти и сбрасывает её на диск после каждого изменения.
// mu защищает items; при изменениях удерживается вместе с сохранением,
// чтобы документ на диске совпадал с памятью.
type Inventory struct {
	Deps

	mu    sync.Mutex
	items []models.Item
}

// New загружает коллекцию из хранилища.
func New(ctx context.Context, deps Deps) (*Inventory, error) {
	items, err := deps.Storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	return &Inventory{Deps: deps, items: items}, nil
}

var _ Service = (*Inventory)(nil)

// List возвращает публичные проекции в порядке добавления.
func (s *Inventory) List(_ context.Context) []models.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ItemView, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.View())
	}
	return out
}

func (s *Inventory) Get(_ context.Context, id string) (models.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.ItemView{}, notFound(id)
	}
	return s.items[idx].View(), nil
}

func (s *Inventory) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// SweepPhotos вызывает sweep с множеством используемых имён файлов. Коллекция
// заблокирована на всё время очистки: Create и UpdatePhoto не могут записать фото посередине.
func (s *Inventory) SweepPhotos(ctx context.Context, sweep PhotoSweeper) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sweep(ctx, s.storedFileNames())
}

// storedFileNames — имена файлов фото, на которые ссылаются записи; вызывается под s.mu.
func (s *Inventory) storedFileNames() map[string]struct{} {
	out := make(map[string]struct{}, len(s.items))
	for _, it := range s.items {
		if it.HasPhoto() {
			out[it.StoredFileName] = struct{}{}
		}
	}
	return out
}

// indexOf вызывается под s.mu.
func (s *Inventory) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persist сохраняет текущую коллекцию; вызывается под s.mu.
func (s *Inventory) persist(ctx context.Context) error {
	if err := s.Storage.Save(ctx, s.items); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("item %q: %w", id, models.ErrNotFound)
}
