package http

import "fmt"

// Handler produces a response body from the request headers. Handlers
// are plain func values; the route table references them, it does not
// own them.
type Handler func(headers map[string]string) string

// Router maps exact request paths to handlers. Registration happens
// before the server starts and the table is read only afterwards, so
// lookups need no locking.
type Router struct {
	routes map[string]Handler
}

func NewRouter() Router {
	return Router{
		routes: make(map[string]Handler),
	}
}

// Handle binds path to handler. The match is exact: query strings are
// not stripped from incoming paths, so "/x?y=1" will not reach a
// handler registered under "/x", and the request method plays no part
// in routing.
func (router *Router) Handle(path string, handler Handler) {
	router.routes[path] = handler
}

// Lookup returns the handler registered for path.
func (router *Router) Lookup(path string) (Handler, bool) {
	handler, found := router.routes[path]
	return handler, found
}

// NotFoundBody is the page served for paths with no registered
// handler. The requested path is embedded verbatim.
func NotFoundBody(path string) string {
	return fmt.Sprintf("<!DOCTYPE html><html><head><title>404 Not Found</title></head>"+
		"<body><h1>404 Not Found</h1><p>The requested URL %s was not found on this server.</p></body></html>",
		path)
}
