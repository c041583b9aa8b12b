// Package site serves the dashboard's static assets and the root redirect.
package site

import (
	"context"
	"net/http"
)

// DashboardPath is where the root path redirects.
const DashboardPath = "/dashboard"

// Register attaches the static asset routes and the root redirect to mux.
//
//	GET /          -> 302 /dashboard
//	GET /static/*  -> embedded stylesheet, script and method page
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/{$}", NewRootHandler().HandleRoot)
}

// RootHandler handles root path requests.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot redirects GET / to the dashboard, keeping the query string.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	target := DashboardPath
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}
