package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for image upload/read URL generation
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	r.HandleFunc("/generate-presigned-url", controller.HandleGenerateUploadURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.HandleGetReadURL).Methods("POST")
}
