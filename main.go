package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"sennight_server/controllers"
	"sennight_server/middleware"
	"sennight_server/routes"
	"sennight_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dataDir := getEnv("DATA_DIR", "data")
	port := getEnv("PORT", "3000")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize the file store
	log.Printf("Using data directory: %s", dataDir)
	store, err := services.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to initialize file store: %v", err)
	}

	// Initialize services
	userProfileService := &services.UserProfileService{Store: store}
	discoveryService := &services.DiscoveryService{Store: store}
	matchService := &services.MatchService{Store: store}
	chatService := &services.ChatService{Store: store, Match: matchService}

	photoService, err := services.NewPhotoService(context.Background(), os.Getenv("S3_BUCKET_NAME"))
	if err != nil {
		log.Fatalf("Failed to initialize photo service: %v", err)
	}

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Register routes
	auth := mux.MiddlewareFunc(middleware.RequireAuth(jwtSecret))
	routes.RegisterAuthRoutes(r, userProfileService, jwtSecret)
	routes.RegisterUserProfileRoutes(r, userProfileService, auth)
	routes.RegisterDiscoveryRoutes(r, discoveryService, auth)
	routes.RegisterMatchRoutes(r, matchService, auth)
	routes.RegisterChatRoutes(r, chatService, auth)
	routes.RegisterPhotoRoutes(r, photoService, auth)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("Sennight backend on %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
