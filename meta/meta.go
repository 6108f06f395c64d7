// meta/meta.go
package meta

// BOARD_SIZE is the number of rows and columns on the board.
const BOARD_SIZE = 4

// STACK_SLOTS is the number of reserve slots each player owns.
const STACK_SLOTS = 3

// MIN_SIZE and MAX_SIZE bound a piece's size class.
const (
	MIN_SIZE = 0
	MAX_SIZE = 3
)

// DEFAULT_URL is the match server used when no --url is given.
const DEFAULT_URL = "https://pax.ulaval.ca/gobblet/api/"

// DEFAULT_ADDR is the listen address of the local match server.
const DEFAULT_ADDR = ":8080"

// Environment variables read by the CLI.
const (
	ENV_URL    = "GOBBLET_URL"
	ENV_SECRET = "GOBBLET_SECRET"
	ENV_DEBUG  = "GOBBLET_DEBUG"
	ENV_ADDR   = "GOBBLET_ADDR"
)
