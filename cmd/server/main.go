package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"quiz-platform/internal/account"
	"quiz-platform/internal/event"
	"quiz-platform/internal/models"
	"quiz-platform/internal/quiz"
	"quiz-platform/pkg/cache"
	"quiz-platform/pkg/database"
	"quiz-platform/pkg/websocket"
)

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleStudent, models.RoleTeacher} {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize database
	dbConfig := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.StudentQuiz{},
		&models.Event{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedRoles(db); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(os.Getenv("REDIS_ADDR"))

	// Initialize notification hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Initialize repositories
	accountRepo := account.NewRepository(db)
	quizRepo := quiz.NewRepository(db)
	eventRepo := event.NewRepository(db)

	// Initialize services
	accountService := account.NewService(accountRepo, redisCache, account.BcryptHasher{})
	quizService := quiz.NewService(quizRepo, wsHub)
	eventService := event.NewService(eventRepo, wsHub)

	// Initialize handlers
	accountHandler := account.NewHandler(accountService)
	quizHandler := quiz.NewHandler(quizService)
	eventHandler := event.NewHandler(eventService)

	// Setup router
	router := mux.NewRouter()

	// CORS middleware configuration
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/register", accountHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/login", accountHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/top10students", accountHandler.TopStudents).Methods("GET")
	api.HandleFunc("/quiz/by-teacher", quizHandler.GetQuizzesByTeacher).Methods("GET")
	api.HandleFunc("/quiz", quizHandler.CreateQuiz).Methods("POST", "OPTIONS")
	api.HandleFunc("/student-quizzes", quizHandler.GetStudentQuizzes).Methods("GET")
	api.HandleFunc("/event", eventHandler.CreateEvent).Methods("POST", "OPTIONS")
	api.HandleFunc("/events", eventHandler.ListEvents).Methods("GET")

	// WebSocket endpoint
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
