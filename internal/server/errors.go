package server

import "net/http"

// ErrServerClosed re-exports http.ErrServerClosed so callers of Run need not
// import net/http to recognize a clean shutdown.
var ErrServerClosed = http.ErrServerClosed
