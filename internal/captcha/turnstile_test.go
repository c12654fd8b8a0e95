package captcha

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestVerify_Success(t *testing.T) {
	var gotSecret, gotResponse, gotRemoteIP string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		gotRemoteIP = r.PostFormValue("remoteip")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	verifier := NewTurnstileVerifier("test-secret", server.URL, time.Second, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "client-token", "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "client-token", gotResponse)
	assert.Equal(t, "203.0.113.7", gotRemoteIP)
}

func TestVerify_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	verifier := NewTurnstileVerifier("test-secret", server.URL, time.Second, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "bad-token", "203.0.113.7")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	verifier := NewTurnstileVerifier("test-secret", server.URL, time.Second, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "client-token", "203.0.113.7")

	require.Error(t, err)
	assert.False(t, ok)
}

func TestVerify_TransportError(t *testing.T) {
	// Сервер закрыт до запроса - любая сетевая ошибка означает отказ
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	verifier := NewTurnstileVerifier("test-secret", server.URL, time.Second, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "client-token", "203.0.113.7")

	require.Error(t, err)
	assert.False(t, ok)
}

func TestVerify_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	verifier := NewTurnstileVerifier("test-secret", server.URL, time.Second, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "client-token", "203.0.113.7")

	require.Error(t, err)
	assert.False(t, ok)
}
