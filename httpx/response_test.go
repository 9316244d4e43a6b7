package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuccessMergesFields(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, http.StatusCreated, "Client added successfully", Envelope{"client": map[string]any{"id": 1}})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != true || body["message"] != "Client added successfully" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["client"].(map[string]any); !ok {
		t.Fatalf("client field missing: %v", body)
	}
}

func TestSuccessOmitsEmptyMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, http.StatusOK, "", Envelope{"clients": []int{}})
	var body map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if _, ok := body["message"]; ok {
		t.Fatalf("message should be omitted: %v", body)
	}
}

func TestFail(t *testing.T) {
	rr := httptest.NewRecorder()
	Fail(rr, http.StatusBadRequest, "Invalid JSON body", nil)
	var body map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if rr.Code != http.StatusBadRequest || body["success"] != false || body["message"] != "Invalid JSON body" {
		t.Fatalf("unexpected response %d %v", rr.Code, body)
	}
	if _, ok := body["details"]; ok {
		t.Fatalf("details should be omitted")
	}

	rr = httptest.NewRecorder()
	Fail(rr, http.StatusBadRequest, "bad", map[string]string{"name": "too_short"})
	body = nil
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if d, ok := body["details"].(map[string]any); !ok || d["name"] != "too_short" {
		t.Fatalf("details missing: %v", body)
	}
}

func TestJSONUnencodable(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, map[string]any{"ch": make(chan int)})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}
