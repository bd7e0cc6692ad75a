package main

import (
	"strconv"
	"time"

	"github.com/freekieb7/pebble/http"
)

func registerRoutes(server *http.Server) {
	server.Router.Handle("/", homePage)
	server.Router.Handle("/about", aboutPage)
	server.Router.Handle("/api/data", apiData)
}

func homePage(_ map[string]string) string {
	return "<!DOCTYPE html>" +
		"<html>" +
		"<head><title>My C++ Server</title>" +
		"<style>" +
		"body { font-family: Arial, sans-serif; margin: 40px; background: #f0f0f0; }" +
		".container { max-width: 800px; margin: 0 auto; background: white; padding: 20px; border-radius: 10px; }" +
		"h1 { color: #333; }" +
		".nav a { margin-right: 15px; text-decoration: none; color: #0066cc; }" +
		"</style></head>" +
		"<body>" +
		"<div class='container'>" +
		"<h1>Welcome to C++ HTTP Server!</h1>" +
		"<p>This is a simple web server built with C++.</p>" +
		"<div class='nav'>" +
		"<a href='/'>Home</a>" +
		"<a href='/about'>About</a>" +
		"<a href='/api/data'>API Data</a>" +
		"</div>" +
		"</div>" +
		"</body></html>"
}

func aboutPage(_ map[string]string) string {
	return "<!DOCTYPE html>" +
		"<html>" +
		"<head><title>About</title></head>" +
		"<body>" +
		"<h1>About This Server</h1>" +
		"<p>This is a lightweight HTTP server written in C++.</p>" +
		"<p>Features:</p>" +
		"<ul>" +
		"<li>Multi-threaded request handling</li>" +
		"<li>Basic routing</li>" +
		"<li>Cross-platform (Windows/Linux)</li>" +
		"</ul>" +
		"<a href='/'>Back to Home</a>" +
		"</body></html>"
}

// apiData serves a JSON shaped body but keeps the default text/html
// content type, matching the wire behavior this server replicates.
func apiData(_ map[string]string) string {
	return "{" +
		"\"status\": \"success\"," +
		"\"data\": {" +
		"\"message\": \"Hello from C++ Server!\"," +
		"\"timestamp\": \"" + strconv.FormatInt(time.Now().Unix(), 10) + "\"," +
		"\"version\": \"1.0\"" +
		"}" +
		"}"
}
