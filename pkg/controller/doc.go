// Package controller contains HTTP middlewares and helper handlers shared by
// the page server and its admin listener.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - RegisterPprof: Mounts net/http/pprof handlers on a ServeMux.
package controller
