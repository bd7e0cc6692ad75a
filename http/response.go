package http

import (
	"encoding/json"
	"fmt"
)

const DefaultContentType = "text/html"

// Response is the transient value serialized onto the wire. It lives
// only long enough to be written and is never retained.
type Response struct {
	Status      uint16
	Message     string
	Body        string
	ContentType string
}

func NewResponse(status uint16, body string) Response {
	return Response{
		Status:      status,
		Message:     StatusText(status),
		Body:        body,
		ContentType: DefaultContentType,
	}
}

// WithText sets a plain text body.
func (res Response) WithText(body string) Response {
	res.ContentType = "text/plain"
	res.Body = body
	return res
}

// WithHTML sets an HTML body.
func (res Response) WithHTML(body string) Response {
	res.ContentType = DefaultContentType
	res.Body = body
	return res
}

// WithJson sets an application/json body. String payloads are taken
// as already encoded JSON; anything else is marshalled, and a marshal
// failure degrades to an empty 500.
func (res Response) WithJson(payload any) Response {
	res.ContentType = "application/json"

	if s, ok := payload.(string); ok {
		res.Body = s
		return res
	}

	data, err := json.Marshal(payload)
	if err != nil {
		res.Status = StatusInternalServerError
		res.Message = StatusText(StatusInternalServerError)
		res.Body = ""
		return res
	}

	res.Body = string(data)
	return res
}

// Bytes frames the response: status line, exactly three headers, a
// blank line, then the body. Content-Length is the byte length of the
// body and Connection: close is always asserted.
func (res *Response) Bytes() []byte {
	return fmt.Appendf(nil,
		"HTTP/1.1 %d %s\r\nContent-Type: %s\r\nContent-Length: %d\r\nConnection: close\r\n\r\n%s",
		res.Status, res.Message, res.ContentType, len(res.Body), res.Body)
}
