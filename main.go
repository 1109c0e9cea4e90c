package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ripple_server/config"
	"ripple_server/routes"
	"ripple_server/services"
	"ripple_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.S3BucketName)

	// Initialize Services
	userService := &services.UserService{Dynamo: dynamoService}
	conversationService := &services.ConversationService{Dynamo: dynamoService}
	messageService := &services.MessageService{Dynamo: dynamoService, Images: s3Service}
	reactionService := &services.ReactionService{Dynamo: dynamoService}
	typingService := &services.TypingService{Dynamo: dynamoService}
	presenceService := &services.PresenceService{Dynamo: dynamoService}
	readStatusService := &services.ReadStatusService{Dynamo: dynamoService, Conversations: conversationService}

	// Socket.IO server for live updates
	sock := socket.NewServer()
	go func() {
		if err := sock.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer sock.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Ripple")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterConversationRoutes(r, conversationService)
	routes.RegisterChatRoutes(r, messageService, sock)
	routes.RegisterReactionRoutes(r, reactionService, sock)
	routes.RegisterTypingRoutes(r, typingService, sock)
	routes.RegisterPresenceRoutes(r, presenceService, sock)
	routes.RegisterReadRoutes(r, readStatusService)
	routes.RegisterS3Routes(r, s3Service)

	r.PathPrefix("/socket.io/").Handler(sock.Handler())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
