package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"overol-freefly/app/controller"
	"overol-freefly/models"
)

type Controllers struct {
	Health     *controller.HealthController
	Catalog    *controller.CatalogController
	ColorAdmin *controller.ColorAdminController
	Order      *controller.OrderController
}

// SetupRoutes builds the /api router wrapped in CORS and request logging
func SetupRoutes(controllers *Controllers) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = detailHandler(http.StatusNotFound, "Not Found")
	r.MethodNotAllowedHandler = detailHandler(http.StatusMethodNotAllowed, "Method Not Allowed")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", controllers.Health.Health).Methods(http.MethodGet)

	// Catalog
	api.HandleFunc("/fabric-types", controllers.Catalog.GetFabricTypes).Methods(http.MethodGet)
	api.HandleFunc("/colors", controllers.Catalog.GetColors).Methods(http.MethodGet)
	api.HandleFunc("/colors/{fabricTypeId}", controllers.Catalog.GetColorsByFabricType).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/colors", controllers.ColorAdmin.ManageColors).Methods(http.MethodPost)

	// Orders
	api.HandleFunc("/orders", controllers.Order.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{orderId}/pdf", controllers.Order.DownloadPDF).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.ExposedHeaders([]string{"Content-Disposition"}),
	)

	return logMiddleware(cors(r))
}

func detailHandler(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: message})
	})
}

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.String(),
			"status":     rec.status,
			"duration":   time.Since(start).String(),
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("handled request")
	})
}
