package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is the prefix under which RegisterPprof mounts the profiling handlers.
const PprofPath = "/debug/pprof/"

// RegisterPprof registers the net/http/pprof handlers on mux under PprofPath.
// Named profiles (heap, goroutine, ...) are served by the index handler.
func RegisterPprof(mux *http.ServeMux) {
	mux.HandleFunc(PprofPath, pprof.Index)
	mux.HandleFunc(PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"trace", pprof.Trace)
}
