package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/openvenue/recruiter/internal/api"
	"github.com/openvenue/recruiter/internal/channel"
	"github.com/openvenue/recruiter/internal/config"
	"github.com/openvenue/recruiter/internal/directory"
	"github.com/openvenue/recruiter/internal/membership"
	"github.com/openvenue/recruiter/internal/record"
	"github.com/openvenue/recruiter/internal/recruit"
)

func main() {
	configPath := "config/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	ctx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Database unreachable: %v", err)
	}
	cancelPing()
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	memberships := membership.NewCachedStore(membership.NewPostgresStore(db), rdb, cfg.Redis.CacheTTL())
	dir := directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.APIKey, cfg.Directory.Timeout(), cfg.Directory.MaxRetries)
	sender := channel.NewSESSender(cfg.SES.AccessKey, cfg.SES.SecretKey, cfg.SES.Region)
	records := record.NewPostgresStore(db)

	engine := recruit.NewEngine(dir, memberships, sender, records, cfg.Recruit.GetWorkers())

	router := api.SetupRoutes(api.NewHandlers(engine))

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // dispatch runs are long-lived
	}

	go func() {
		log.Printf("Recruitment service listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
