// Package resthttp реализует REST API инвентаря поверх chi. Каждому маршруту соответствует свой handler_*.go.
package resthttp

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sir_venger/inventory_lite/internal/config"
	"github.com/sir_venger/inventory_lite/internal/logging"
	"github.com/sir_venger/inventory_lite/internal/repo"
	"github.com/sir_venger/inventory_lite/internal/repo/photos"
	"github.com/sir_venger/inventory_lite/internal/usecase/inventory"
	"github.com/sir_venger/inventory_lite/pkg/inventoryproto"
)

type Server struct {
	Inventory inventory.Service
	Storage   *repo.Storage
	Cfg       *config.Config
	Log       logging.Logger
}

// NewServer конструктор: поднимает хранилище, загружает коллекцию и собирает роутер.
func NewServer(ctx context.Context, cfg *config.Config, log logging.Logger) (http.Handler, *Server, error) {
	storage, err := buildStorage(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	svc, err := inventory.New(ctx, inventory.Deps{
		Storage: storage,
		Log:     log,
	})
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Inventory: svc,
		Storage:   storage,
		Cfg:       cfg,
		Log:       log,
	}

	return srv.routes(), srv, nil
}

func buildStorage(ctx context.Context, cfg *config.Config, log logging.Logger) (*repo.Storage, error) {
	ps, err := photos.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	doc := repo.NewDocument(cfg.DocumentPath(), log)
	return repo.NewStorage(doc, ps), nil
}

// routes регистрирует обработчики. Неизвестный метод на известном пути отдаёт chi: 405 с заголовком Allow.
func (s *Server) routes() http.Handler {
	rtr := chi.NewRouter()
	rtr.Use(middleware.RequestID)
	rtr.Use(s.logRequests)
	rtr.Use(middleware.Recoverer)

	rtr.Post(inventoryproto.PathRegister, s.postRegister)
	rtr.Get(inventoryproto.PathInventory, s.listInventory)

	rtr.Get(inventoryproto.PathItem, s.getItem)
	rtr.Put(inventoryproto.PathItem, s.putItem)
	rtr.Delete(inventoryproto.PathItem, s.deleteItem)
	rtr.Get(inventoryproto.PathItemPhoto, s.getPhoto)
	rtr.Put(inventoryproto.PathItemPhoto, s.putPhoto)

	rtr.Post(inventoryproto.PathSearch, s.postSearch)
	rtr.Get(inventoryproto.PathSearch, s.getSearch)

	rtr.Get(inventoryproto.PathHealth, s.health)
	rtr.Post(inventoryproto.PathAdminGC, s.gcOnce)

	return rtr
}
