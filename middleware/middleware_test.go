// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Test that logging doesn't interfere with various response codes
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"SeeOther", http.StatusSeeOther, ""},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/questions", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	var seen string
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	})

	t.Run("generated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		got := w.Header().Get(RequestIDHeader)
		if len(got) != 36 {
			t.Errorf("Expected UUID request ID, got '%s'", got)
		}
		if seen != got {
			t.Errorf("Context request ID '%s' does not match header '%s'", seen, got)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("Expected propagated request ID, got '%s'", got)
		}
		if seen != "abc-123" {
			t.Errorf("Expected context request ID 'abc-123', got '%s'", seen)
		}
	})
}

func TestRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got '%s'", id)
	}
}

type fakeErrorRenderer struct {
	status  int
	message string
}

func (f *fakeErrorRenderer) Error(w http.ResponseWriter, status int, message string) {
	f.status = status
	f.message = message
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func TestRecover(t *testing.T) {
	errs := &fakeErrorRenderer{}
	handler := Recover(errs, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/questions/new", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if errs.status != http.StatusInternalServerError {
		t.Errorf("Expected renderer to be called with 500, got %d", errs.status)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Error("Panic value should not leak to the client")
	}
}

func TestRecover_NoPanic(t *testing.T) {
	errs := &fakeErrorRenderer{}
	handler := Recover(errs, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK || w.Body.String() != "fine" {
		t.Errorf("Expected untouched response, got %d '%s'", w.Code, w.Body.String())
	}
	if errs.status != 0 {
		t.Error("Renderer should not be called without a panic")
	}
}

func TestParseForm(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		contentType string
		expected    map[string]string
	}{
		{
			name:        "both fields",
			body:        url.Values{"title": {"Hi"}, "body": {"There"}}.Encode(),
			contentType: "application/x-www-form-urlencoded",
			expected:    map[string]string{"title": "Hi", "body": "There"},
		},
		{
			name:        "missing body",
			body:        url.Values{"title": {"Hi"}}.Encode(),
			contentType: "application/x-www-form-urlencoded",
			expected:    map[string]string{"title": "Hi", "body": ""},
		},
		{
			name:        "malformed encoding",
			body:        "title=%zz",
			contentType: "application/x-www-form-urlencoded",
			expected:    map[string]string{"title": "", "body": ""},
		},
		{
			name:        "not a form",
			body:        `{"title":"Hi"}`,
			contentType: "application/json",
			expected:    map[string]string{"title": "", "body": ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/questions", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)

			got := ParseForm(req, "title", "body")

			for k, v := range tc.expected {
				if got[k] != v {
					t.Errorf("Expected %s='%s', got '%s'", k, v, got[k])
				}
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs (comma separated)",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100, 10.0.0.1, 172.16.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs (space after comma)",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "[::1]:12345",
			expectedIP: "[::1]", // Implementation strips port after last colon
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "2001:db8::1",
		},
		{
			name:       "empty X-Forwarded-For falls through to RemoteAddr",
			headers:    map[string]string{"X-Forwarded-For": ""},
			remoteAddr: "10.0.0.5:8080",
			expectedIP: "10.0.0.5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			result := GetClientIP(req)

			if result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
