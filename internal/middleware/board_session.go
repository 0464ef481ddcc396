package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JGSSSILVA/Personal-Kanban/internal/constants"
)

// BoardSession guarantees every request carries a stable board id in its
// cookie session, minting one on first contact. The id keys the per-client
// board state; there is no authentication attached to it.
func BoardSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		boardID, _ := session.Get(constants.SessionKeyBoardID).(string)
		if boardID == "" {
			boardID = uuid.NewString()
			session.Set(constants.SessionKeyBoardID, boardID)
			if err := session.Save(); err != nil {
				// A client refusing cookies still gets a working, if
				// amnesiac, board.
				boardID = uuid.NewString()
			}
		}

		c.Set(constants.ContextKeyBoardID, boardID)
		c.Next()
	}
}

// GetBoardID retrieves the board id placed in the context by BoardSession.
func GetBoardID(c *gin.Context) (string, bool) {
	boardID, exists := c.Get(constants.ContextKeyBoardID)
	if !exists {
		return "", false
	}
	id, ok := boardID.(string)
	return id, ok && id != ""
}
