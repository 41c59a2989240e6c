package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sir_venger/inventory_lite/internal/app/resthttp"
	"github.com/sir_venger/inventory_lite/internal/config"
	"github.com/sir_venger/inventory_lite/internal/logging"
)

const shutdownTimeout = 15 * time.Second

var (
	flagHost  string
	flagPort  int
	flagCache string
)

var rootCmd = &cobra.Command{
	Use:          "inventory",
	Short:        "Inventory HTTP service backed by a JSON document and a photo directory",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().StringVar(&flagHost, "host", "", "host to listen on (overrides listen_addr host)")
	rootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "port to listen on (overrides listen_addr port)")
	rootCmd.Flags().StringVarP(&flagCache, "cache", "c", "", "cache directory with inventory.json and photos")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe поднимает REST-сервис и корректно завершает его по SIGINT/SIGTERM.
func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cfg, flagHost, flagPort, flagCache)

	log := logging.NewJSON(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, srv, err := resthttp.NewServer(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "init failed", "error", err)
		return err
	}

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(gctx, "REST listening", "addr", cfg.ListenAddr, "cache_dir", cfg.CacheDir, "photos", cfg.Photos.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT или падении сервера.
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(shutdownCtx, "REST shutdown error", "error", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		return srv.RunGC(gctx, cfg.GCInterval)
	})

	if err := g.Wait(); err != nil {
		log.Error(context.Background(), "server stopped with error", "error", err)
		return err
	}
	log.Info(context.Background(), "server stopped")
	return nil
}

// applyFlags накладывает флаги командной строки поверх конфигурации.
func applyFlags(cfg *config.Config, host string, port int, cache string) {
	if cache != "" {
		cfg.CacheDir = cache
	}
	if host == "" && port == 0 {
		return
	}

	curHost, curPort, err := net.SplitHostPort(cfg.ListenAddr)
	if err != nil {
		curHost, curPort = "", ""
	}
	if host != "" {
		curHost = host
	}
	if port != 0 {
		curPort = strconv.Itoa(port)
	}
	cfg.ListenAddr = net.JoinHostPort(curHost, curPort)
}
