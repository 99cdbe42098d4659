// router.go - Builds the Gin engine and its routes

package router // Declares the package name

import ( // Import required packages
	"go-employee-backend/database"   // Store
	"go-employee-backend/handlers"   // Route handlers
	"go-employee-backend/middleware" // Global and per-group middleware

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/rs/zerolog"    // Structured logging
)

// Deps are the collaborators the routes need.
type Deps struct {
	Store     *database.Store
	Events    handlers.EventPublisher // nil disables events
	Logger    zerolog.Logger
	RateLimit float64 // Requests per second, 0 disables
	RateBurst int
}

// New returns a Gin engine with the global middleware and every route registered.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.RateLimit(d.RateLimit, d.RateBurst))

	r.GET("/health", handlers.Health(d.Store))

	users := handlers.NewUserHandler(d.Events)
	api := r.Group("/users")
	api.Use(middleware.DBSession(d.Store)) // One session per request
	{
		api.POST("", users.CreateUser)
		api.GET("", users.ListUsers)
		api.GET("/:id", users.GetUser)
		api.DELETE("/remove-duplicates", users.RemoveDuplicates)
	}

	return r
}
