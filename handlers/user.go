// user.go - Handles creating, reading and de-duplicating employee records

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"go-employee-backend/database"   // ErrUserNotFound
	"go-employee-backend/middleware" // Request-scoped session and logger
	"go-employee-backend/models"     // User model

	"github.com/gin-gonic/gin" // Gin web framework
)

// Event topics, relative to the publisher's prefix.
const (
	TopicUserCreated       = "users/created"
	TopicDuplicatesRemoved = "users/duplicates_removed"
)

// EventPublisher sends a payload to a topic. *mqtt.Client implements it.
type EventPublisher interface {
	Publish(topic string, payload interface{}) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, interface{}) error { return nil }

// UserCreatedEvent is published after a user is committed. The password is left out.
type UserCreatedEvent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DuplicatesRemovedEvent is published after remove-duplicates commits.
type DuplicatesRemovedEvent struct {
	Removed   int64 `json:"removed"`
	Remaining int   `json:"remaining"`
}

// userURI binds the :id path parameter. IDs start at 1.
type userURI struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// UserHandler serves the /users endpoints. Storage comes from the request's session.
type UserHandler struct {
	events EventPublisher
}

// NewUserHandler builds a UserHandler. A nil publisher disables events.
func NewUserHandler(events EventPublisher) *UserHandler {
	if events == nil {
		events = NoopPublisher{}
	}
	return &UserHandler{events: events}
}

// CreateUser - POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.UserInput                       // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse and validate JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Rejected before storage
		return
	}

	session := middleware.GetSession(c)
	user := input.ToUser()
	if err := session.CreateUser(&user); err != nil { // Save user to DB
		storageError(c, err)
		return
	}
	if err := session.Commit(); err != nil {
		storageError(c, err)
		return
	}

	h.publish(c, TopicUserCreated, UserCreatedEvent{ID: user.ID, Name: user.Name, Email: user.Email})
	c.JSON(http.StatusOK, user) // Created record including its id
}

// ListUsers - GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := middleware.GetSession(c).ListUsers()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser - GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	var uri userURI
	if err := c.ShouldBindUri(&uri); err != nil { // id must be a positive integer
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := middleware.GetSession(c).GetUser(uri.ID)
	if errors.Is(err, database.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"}) // Return 404
		return
	}
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RemoveDuplicates - DELETE /users/remove-duplicates
// Keeps the lowest id of every email group and returns the surviving rows.
func (h *UserHandler) RemoveDuplicates(c *gin.Context) {
	session := middleware.GetSession(c)

	removed, err := session.RemoveDuplicateUsers()
	if err != nil {
		storageError(c, err)
		return
	}
	users, err := session.ListUsers() // Same transaction, so this is the post-delete state
	if err != nil {
		storageError(c, err)
		return
	}
	if err := session.Commit(); err != nil {
		storageError(c, err)
		return
	}

	log := middleware.GetLogger(c)
	log.Info().Int64("removed", removed).Int("remaining", len(users)).Msg("duplicate users removed")

	h.publish(c, TopicDuplicatesRemoved, DuplicatesRemovedEvent{Removed: removed, Remaining: len(users)})
	c.JSON(http.StatusOK, users)
}

// publish sends an event after the response data is committed. Failures are only logged.
func (h *UserHandler) publish(c *gin.Context, topic string, payload interface{}) {
	if err := h.events.Publish(topic, payload); err != nil {
		log := middleware.GetLogger(c)
		log.Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
	}
}

// storageError reports an engine failure unchanged as a 500.
func storageError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
