package http

import (
	"edl-backend/internal/service"
	"edl-backend/internal/storage"

	"github.com/gorilla/mux"
)

// NewRouter wires all REST endpoints.
func NewRouter(reports service.ReportService, rentals service.RentalService, agencies service.AgencyService, blobs storage.BlobStore) *mux.Router {
	reportHandler := NewReportHandler(reports)
	rentalHandler := NewRentalHandler(rentals, agencies)
	blobHandler := NewBlobHandler(blobs)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/agencies", rentalHandler.HandleListAgencies).Methods("GET")
	api.HandleFunc("/rentals/today", rentalHandler.HandleListToday).Methods("GET")
	api.HandleFunc("/rentals/history", rentalHandler.HandleSearchHistory).Methods("GET")
	api.HandleFunc("/rentals/{id}", rentalHandler.HandleGet).Methods("GET")

	// create-or-update: one draft per (rental, direction)
	api.HandleFunc("/reports", reportHandler.HandleSave).Methods("POST")
	api.HandleFunc("/reports/{id}/complete", reportHandler.HandleComplete).Methods("POST")
	api.HandleFunc("/reports/{id}/resend", reportHandler.HandleResend).Methods("POST")
	api.HandleFunc("/reports/{id}/damages", reportHandler.HandleAddDamage).Methods("POST")
	api.HandleFunc("/reports/{id}/damages/{damageId}", reportHandler.HandleRemoveDamage).Methods("DELETE")
	api.HandleFunc("/reports/{id}/photos", reportHandler.HandleAddPhoto).Methods("POST")

	// keys are namespaced paths (e.g. documents/<id>.html), so match slashes
	api.HandleFunc("/blobs/{key:.+}", blobHandler.HandleUpload).Methods("PUT")
	api.HandleFunc("/blobs/{key:.+}", blobHandler.HandleDownload).Methods("GET")

	return router
}
