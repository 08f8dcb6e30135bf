package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// WriteJSON marshals v and writes it with the given status code.
// A marshal failure results in a 500.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, resp, statusCode)
}

func WriteText(w http.ResponseWriter, message string, statusCode int) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(message); err != nil {
		log.Errorf("write response (%d bytes): %s", len(message), err)
	}
}

// WriteDecodeError answers a request body that could not be decoded:
// 413 when it went over the size limit, 400 otherwise.
func WriteDecodeError(w http.ResponseWriter, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, fmt.Sprintf("%s, body over %d bytes", message, tooLarge.Limit), http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, message+", invalid json", http.StatusBadRequest)
}
