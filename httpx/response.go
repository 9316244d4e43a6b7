package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the common response shape: {success, message?, ...payload}.
type Envelope map[string]any

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"success":false,"message":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

// Success writes {success:true, message?, ...fields}.
func Success(w http.ResponseWriter, status int, msg string, fields Envelope) {
	body := Envelope{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	for k, v := range fields {
		body[k] = v
	}
	JSON(w, status, body)
}

// Fail writes {success:false, message, details?}.
func Fail(w http.ResponseWriter, status int, msg string, details any) {
	body := Envelope{"success": false, "message": msg}
	if details != nil {
		body["details"] = details
	}
	JSON(w, status, body)
}
