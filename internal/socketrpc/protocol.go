package socketrpc

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// JSON-RPC 2.0 Method Reference
//
// The socket RPC server exposes model.FaceController over a Unix domain
// socket, one request per line. Each method maps 1:1 to the interface.
//
//   Method          Params                  Result
//   ────────────    ────────────────────    ──────────────────
//   Tap             (none)                  true
//   SetConnected    {Connected: bool}       true
//   Resync          (none)                  true
//   Snapshot        (none)                  model.FaceSnapshot
//
// SetConnected rejects a missing Connected field with -32602.
//
// Error codes follow JSON-RPC 2.0:
//   -32700  Parse error (malformed JSON)
//   -32601  Method not found
//   -32602  Invalid params
//   -32603  Internal error (marshal failure)
//   -32000  Application error (controller failure)

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
	codeAppError       = -32000
)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string { return e.Message }

// DefaultSocketPath returns the default Unix socket path.
// It prefers $XDG_RUNTIME_DIR/digitface/digitface.sock, falling back to
// ~/.local/state/digitface/digitface.sock.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "digitface", "digitface.sock")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/digitface.sock"
	}
	return filepath.Join(home, ".local", "state", "digitface", "digitface.sock")
}
