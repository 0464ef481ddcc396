package constants

const (
	// SessionKeyBoardID is the cookie-session key holding the opaque id
	// that maps a browser to its live board state.
	SessionKeyBoardID = "board_id"

	// ContextKeyBoardID is the gin context key the session middleware
	// stores the board id under.
	ContextKeyBoardID = "board_id"

	// DefaultCityLimit is how many geocoding candidates the city
	// autocomplete returns.
	DefaultCityLimit = 5

	// MaxCityLimit caps the candidate count a client may request.
	MaxCityLimit = 10
)
