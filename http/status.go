package http

const (
	StatusOK                  uint16 = 200
	StatusCreated             uint16 = 201
	StatusNoContent           uint16 = 204
	StatusMovedPermanently    uint16 = 301
	StatusFound               uint16 = 302
	StatusBadRequest          uint16 = 400
	StatusForbidden           uint16 = 403
	StatusNotFound            uint16 = 404
	StatusInternalServerError uint16 = 500
)

var unknownStatusCode = "Unknown Status Code"

var statusMessages = map[uint16]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusNoContent:           "No Content",
	StatusMovedPermanently:    "Moved Permanently",
	StatusFound:               "Found",
	StatusBadRequest:          "Bad Request",
	StatusForbidden:           "Forbidden",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

// StatusText returns the reason phrase for a status code.
func StatusText(status uint16) string {
	if msg, found := statusMessages[status]; found {
		return msg
	}
	return unknownStatusCode
}
