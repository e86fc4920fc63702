package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	userHandler *UserHandler,
	documentHandler *DocumentHandler,
	speechHandler *SpeechHandler,
	apiKeyMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"book-reader-server"}`))
	}).Methods("GET")

	// Every other route requires the shared secret
	protected := router.PathPrefix("").Subrouter()
	protected.Use(apiKeyMiddleware)

	protected.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	protected.HandleFunc("/user-exists", userHandler.UserExists).Methods("POST")

	protected.HandleFunc("/upload-pdf", documentHandler.UploadPDF).Methods("POST")
	protected.HandleFunc("/upload-pdf-metadata", documentHandler.UploadPDFMetadata).Methods("POST")
	protected.HandleFunc("/list-pdfs", documentHandler.ListPDFs).Methods("POST")
	protected.HandleFunc("/delete-pdf", documentHandler.DeletePDF).Methods("POST")

	protected.HandleFunc("/text-to-speech", speechHandler.TextToSpeech).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-API-KEY",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
