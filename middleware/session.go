// session.go - Per-request database session middleware
// This file gives every request its own database session
//
// Session Flow:
// 1. Begin a session bound to the request context
// 2. Store it in the gin context for handlers
// 3. Run the handler chain
// 4. Close the session whatever happened (uncommitted writes roll back)

package middleware // Declares the package name

import ( // Import required packages
	"context"  // Request context
	"net/http" // HTTP status codes

	"go-employee-backend/database" // Store and Session

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

// SessionKey is the gin context key holding the *database.Session.
const SessionKey = "db_session"

// SessionBeginner opens a request-scoped session. *database.Store implements it.
type SessionBeginner interface {
	Begin(ctx context.Context) (*database.Session, error)
}

// DBSession returns a Gin middleware that scopes one database session to each request.
func DBSession(store SessionBeginner) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Acquire the session before the handler runs
		session, err := store.Begin(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()}) // Return 500
			return
		}

		// STEP 2: Release it unconditionally, even if the handler panics
		defer func() {
			if err := session.Close(); err != nil {
				log := GetLogger(c)
				log.Warn().Err(err).Msg("failed to release database session")
			}
		}()

		c.Set(SessionKey, session) // Store session in Gin context
		c.Next()                   // Continue to next handler
	}
}

// GetSession returns the session stored by DBSession.
// It panics when DBSession is missing from the chain, which is a wiring bug.
func GetSession(c *gin.Context) *database.Session {
	return c.MustGet(SessionKey).(*database.Session)
}
