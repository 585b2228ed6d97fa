package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSignsBody(t *testing.T) {
	secret := "whsec_test"
	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		gotSignature = r.Header.Get(SignatureHeader)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := NewSender()
	err := sender.Send(context.Background(), server.URL, secret, map[string]string{"event_type": "transcript.completed"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"event_type":"transcript.completed"}`, string(gotBody))

	// Recompute the MAC from the received parts.
	parts := strings.SplitN(gotSignature, ",", 2)
	require.Len(t, parts, 2)
	ts := strings.TrimPrefix(parts[0], "t=")
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.", ts)
	mac.Write(gotBody)
	assert.Equal(t, "v1="+hex.EncodeToString(mac.Sum(nil)), parts[1])
}

func TestSendNon2xxIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewSender().Send(context.Background(), server.URL, "s", map[string]int{"n": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestVerify(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"ok":true}`)
	now := time.Unix(1700000000, 0)
	sig := Sign(secret, now, body)

	t.Run("round trip", func(t *testing.T) {
		assert.NoError(t, Verify(secret, sig, body, now, time.Minute))
	})

	t.Run("tampered body", func(t *testing.T) {
		assert.Error(t, Verify(secret, sig, []byte(`{"ok":false}`), now, time.Minute))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.Error(t, Verify("other", sig, body, now, time.Minute))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		assert.Error(t, Verify(secret, sig, body, now.Add(10*time.Minute), time.Minute))
	})

	t.Run("zero tolerance skips the age check", func(t *testing.T) {
		assert.NoError(t, Verify(secret, sig, body, now.Add(24*time.Hour), 0))
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Error(t, Verify(secret, "v1=abc", body, now, time.Minute))
	})
}
