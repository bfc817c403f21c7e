package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/matematicodogreen/mhdelivery/internal/auth"
	"github.com/matematicodogreen/mhdelivery/internal/cart"
	"github.com/matematicodogreen/mhdelivery/internal/catalog"
	"github.com/matematicodogreen/mhdelivery/internal/checkout"
	"github.com/matematicodogreen/mhdelivery/internal/config"
	"github.com/matematicodogreen/mhdelivery/internal/httpx"
	"github.com/matematicodogreen/mhdelivery/internal/obs"
	"github.com/matematicodogreen/mhdelivery/internal/storage"
)

func newBackend(cfg config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case "redis":
		return storage.NewRedis(cfg.RedisAddr), nil
	case "memory":
		return storage.NewMemory(), nil
	default:
		return storage.NewFile(cfg.DataDir)
	}
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	obs.InitLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	cat, err := catalog.New(ctx, backend)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	crt, err := cart.New(ctx, backend, cat)
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	chk := &checkout.Service{Catalog: cat, Cart: crt}

	router := httpx.NewRouter()
	sh := &httpx.StoreHandler{Catalog: cat, Cart: crt, Checkout: chk}
	sh.Register(router)
	ah := &httpx.AdminHandler{
		Catalog:  cat,
		Verifier: auth.NewVerifier(cfg.CredentialsURL),
		Sessions: auth.NewSessions(),
	}
	ah.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		obs.Logger.Info("HTTP listening", "addr", cfg.HTTPAddr, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	obs.Logger.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
