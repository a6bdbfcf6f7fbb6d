package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emmanuel-nwafor/Fore-made-webApp/cart"
	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
	"github.com/emmanuel-nwafor/Fore-made-webApp/config"
	orderControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/order"
	"github.com/emmanuel-nwafor/Fore-made-webApp/identity"
	"github.com/emmanuel-nwafor/Fore-made-webApp/kvstore"
	"github.com/emmanuel-nwafor/Fore-made-webApp/profile"
	"github.com/emmanuel-nwafor/Fore-made-webApp/routes"
)

func main() {
	log.Println("✅ Starting storefront...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Static catalog, loaded wholesale at startup and never written.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("❌ Catalog load failed: %v", err)
	}
	logger.Info().Int("products", cat.Len()).Msg("catalog loaded")

	store := openStore(cfg)

	provider := newProvider(cfg, logger)

	pricing := cart.Pricing{TaxRate: cfg.TaxRateDecimal(), ShippingFee: cfg.ShippingFeeDecimal()}
	deps := routes.Deps{
		Catalog:   cat,
		Cart:      cart.NewService(store, cat, pricing, logger),
		Profiles:  profile.NewService(store, logger),
		Provider:  provider,
		Broker:    identity.NewBroker(),
		OrderHub:  orderControllers.NewHub(),
		JWTSecret: []byte(cfg.JWTSecret),
		Log:       logger,
	}

	// Gin setup
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	log.Printf("✅ Listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}

func openStore(cfg *config.Config) kvstore.Store {
	switch cfg.StoreBackend {
	case "memory":
		return kvstore.NewMemStore()
	case "bolt":
		store, err := kvstore.OpenBolt(cfg.BoltPath)
		if err != nil {
			log.Fatalf("❌ Bolt store failed: %v", err)
		}
		return store
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err := kvstore.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("❌ Redis store failed: %v", err)
		}
		return store
	default:
		log.Fatalf("❌ Unknown store backend %q", cfg.StoreBackend)
		return nil
	}
}

func newProvider(cfg *config.Config, logger zerolog.Logger) identity.Provider {
	if cfg.FirebaseCredentialsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON must be set")
	}
	if cfg.FirebaseProjectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}
	provider, err := identity.NewFirebaseProvider(
		context.Background(),
		[]byte(cfg.FirebaseCredentialsJSON),
		cfg.FirebaseProjectID,
		logger,
	)
	if err != nil {
		log.Fatalf("❌ Identity provider init failed: %v", err)
	}
	return provider
}
