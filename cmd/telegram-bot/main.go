package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/linymin/nutriplan-365/internal/analysis"
	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/config"
	"github.com/linymin/nutriplan-365/internal/database"
	"github.com/linymin/nutriplan-365/internal/grocery"
	"github.com/linymin/nutriplan-365/internal/logger"
	"github.com/linymin/nutriplan-365/internal/planner"
	"github.com/linymin/nutriplan-365/internal/telegram"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize()
	defer logger.Close()

	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize the SQLite database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 3. Initialize catalogs and services
	ingredients := catalog.NewIngredientCatalog()
	dishes := catalog.NewDishCatalog(ingredients)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	composer := planner.NewComposer(dishes, rng)
	generator := planner.NewGenerator(composer)
	aggregator := grocery.NewAggregator(dishes)

	planRepo := planner.NewPlanRepository(db.SQL)
	recordRepo := analysis.NewRecordRepository(db.SQL)

	// 4. Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg, generator, aggregator, dishes, planRepo, recordRepo)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	// 5. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
