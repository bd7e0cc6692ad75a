package http

import "strings"

// Request is the parsed form of the single buffer read from a
// connection. One is built per connection and discarded once the
// handler returns.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers map[string]string
	Body    string
}

// ParseRequest turns the raw text of one read into a Request. The
// parse is lenient: missing request line tokens leave their fields
// empty, header lines without a colon are skipped and malformed input
// never produces an error. Header values are assumed to follow the
// conventional ": " separator, so the character directly after the
// colon is always consumed.
func ParseRequest(raw string) Request {
	req := Request{Headers: make(map[string]string)}

	lines := strings.Split(raw, "\n")

	parts := strings.Fields(lines[0])
	if len(parts) > 0 {
		req.Method = parts[0]
	}
	if len(parts) > 1 {
		req.Path = parts[1]
	}
	if len(parts) > 2 {
		req.Version = parts[2]
	}

	// Headers run until a line holding a bare carriage return. An
	// empty line does not end them; it is just a line without a colon.
	i := 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "\r" {
			i++
			break
		}

		colon := strings.Index(line, ":")
		if colon < 0 {
			continue
		}

		key := line[:colon]
		var value string
		if colon+2 <= len(line) {
			value = line[colon+2:]
		}
		value = strings.TrimSuffix(value, "\r")

		// Last occurrence wins on duplicate keys.
		req.Headers[key] = value
	}

	req.Body = strings.Join(lines[i:], "\n")

	return req
}
