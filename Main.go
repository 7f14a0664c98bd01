package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"Storefront/catalog"
	"Storefront/config"
	"Storefront/handlers"
	"Storefront/repository"
	"Storefront/routers"
	"Storefront/store"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("STOREFRONT_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	recordStore, err := setupStore(cfg)
	if err != nil {
		log.Fatalf("failed to set up record store: %v", err)
	}

	productCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("failed to load product catalog: %v", err)
	}
	log.Printf("catalog loaded: %d products", len(productCatalog.All()))

	env := &handlers.Env{
		Catalog:   productCatalog,
		Carts:     repository.NewCartRepository(recordStore),
		Users:     repository.NewUserRepository(recordStore),
		Orders:    repository.NewOrderRepository(recordStore),
		Addresses: repository.NewAddressRepository(recordStore),
		Favorites: repository.NewFavoriteRepository(recordStore),
		Profiles:  repository.NewProfileRepository(recordStore),
		Sessions:  repository.NewSessionRepository(recordStore),
		JWTSecret: cfg.JWT.Secret,
	}
	env.TrackCartCount(recordStore)

	router := routers.SetupRouters(cfg, env)
	if router == nil {
		log.Fatal("failed to set up routes")
	}
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupStore(cfg config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		rdb, err := config.SetupRedisConnection(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(rdb, cfg.Store.Prefix), nil
	case "mysql", "sqlite":
		db, err := config.SetupDatabaseConnection(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewDatabaseStore(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
