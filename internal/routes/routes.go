package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/handlers"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/middleware"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	articleHandler *handlers.ArticleHandler,
	categoryHandler *handlers.CategoryHandler,
	submissionHandler *handlers.SubmissionHandler,
	subscriberHandler *handlers.SubscriberHandler,
	authHandler *handlers.AuthHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(middleware.Logging)

	router.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Public routes ---
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/articles", articleHandler.ListArticles).Methods("GET")
	api.HandleFunc("/articles/{slug}", articleHandler.GetArticle).Methods("GET")
	api.HandleFunc("/articles/{slug}", articleHandler.PatchArticle).Methods("PATCH")
	api.HandleFunc("/articles/{slug}/related", articleHandler.RelatedArticles).Methods("GET")

	api.HandleFunc("/article-categories", categoryHandler.ListCategories).Methods("GET")
	api.HandleFunc("/article-categories/{id}", categoryHandler.GetCategory).Methods("GET")

	api.HandleFunc("/form-submissions", submissionHandler.CreateSubmission).Methods("POST")

	api.HandleFunc("/newsletters", subscriberHandler.Subscribe).Methods("POST")

	api.HandleFunc("/media/info", mediaHandler.MediaInfo).Methods("GET")

	// --- Admin routes, JWT protected ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))

	protected.HandleFunc("/articles", articleHandler.CreateArticle).Methods("POST", http.MethodOptions)
	protected.HandleFunc("/articles", articleHandler.UpdateArticle).Methods("PUT")
	protected.HandleFunc("/articles", articleHandler.DeleteArticle).Methods("DELETE")

	protected.HandleFunc("/article-categories", categoryHandler.CreateCategory).Methods("POST", http.MethodOptions)
	protected.HandleFunc("/article-categories", categoryHandler.UpdateCategory).Methods("PUT")
	protected.HandleFunc("/article-categories", categoryHandler.DeleteCategory).Methods("DELETE")

	protected.HandleFunc("/form-submissions", submissionHandler.ListSubmissions).Methods("GET")
	protected.HandleFunc("/form-submissions/admin", submissionHandler.CreateSubmissionAdmin).Methods("POST")
	protected.HandleFunc("/form-submissions/{id}", submissionHandler.GetSubmission).Methods("GET")
	protected.HandleFunc("/form-submissions/{id}", submissionHandler.UpdateSubmission).Methods("PUT")
	protected.HandleFunc("/form-submissions/{id}", submissionHandler.DeleteSubmission).Methods("DELETE")

	protected.HandleFunc("/newsletters", subscriberHandler.ListSubscribers).Methods("GET")
	protected.HandleFunc("/newsletters", subscriberHandler.UpdateSubscriber).Methods("PUT")
	protected.HandleFunc("/newsletters", subscriberHandler.DeleteSubscriber).Methods("DELETE")
}
