package main

import (
	"log"

	"boardlink/internal/auth"
	"boardlink/internal/config"
	"boardlink/internal/db"
	"boardlink/internal/router"
	"boardlink/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	st := store.New(gdb)
	authSvc := auth.NewService(st, []byte(cfg.TokenSecret), cfg.TokenTTL)

	r := gin.Default()
	r.Use(cors.Default())

	router.RegisterRoutes(r, st, authSvc)

	log.Printf("boardlink server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
