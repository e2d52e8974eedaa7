package routes

import (
	"net/http"

	swaggerHandler "github.com/swaggo/http-swagger"

	_ "github.com/oggyb/ballou-sms/internal/docs" // swagger docs
	"github.com/oggyb/ballou-sms/internal/response"
)

type AppDeps struct {
	Home         HomeHandler
	Notification NotificationHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Queue(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	StartStopScheduler(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /notifications", d.Notification.Send)
	mux.HandleFunc("POST /notifications/queue", d.Notification.Queue)
	mux.HandleFunc("GET /notifications", d.Notification.List)
	mux.HandleFunc("GET /stats", d.Notification.Stats)
	mux.HandleFunc("POST /scheduler", d.Notification.StartStopScheduler)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
