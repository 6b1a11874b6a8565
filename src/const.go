package src

//-----------------------------------------------------------------------------
// base
//-----------------------------------------------------------------------------

const (
	KIND_QUEUE = "queue"
	KIND_STACK = "stack"
)

//-----------------------------------------------------------------------------
// errors
//-----------------------------------------------------------------------------

const (
	ErrEmptyContainer    = srError(0x01) /* dequeue or pop on an empty container */
	ErrInvalidPosition   = srError(0x02) /* position outside the valid range */
	ErrAllocationFailure = srError(0x03) /* node allocation failed */
	ErrUnknownCommand    = srError(0x04)
	ErrWrongArgs         = srError(0x05)
	ErrNotInteger        = srError(0x06)
	ErrInvalidOption     = srError(0x07)
)

//-----------------------------------------------------------------------------
// cli
//-----------------------------------------------------------------------------

const (
	CLI_OK  = 0
	CLI_ERR = 1

	CONFIG = "./lists.conf"

	DEFAULT_PROMPT      = "Enter your choice: "
	DEFAULT_HISTORY     = ".lists_cli_history"
	DEFAULT_HISTORY_MAX = 100
	DEFAULT_RULE_WIDTH  = 40

	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"

	// splitArgs status

	SPA_CONTINUE   = 1
	SPA_DONE       = 2
	SPA_TERMINATED = 3

	// separator between commands given with -e

	CMD_SEPARATOR = ";"
)
