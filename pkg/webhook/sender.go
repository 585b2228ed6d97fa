// Package webhook delivers signed JSON callbacks to room-configured
// endpoints. Each request carries an HMAC-SHA256 signature over the
// timestamped body so receivers can authenticate the sender and reject
// replays outside their tolerance window.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/monadical-sas/reflector/pkg/version"
)

// SignatureHeader carries the delivery signature, in the form
// "t=<unix seconds>,v1=<hex hmac-sha256(secret, "<t>.<body>")>".
const SignatureHeader = "X-Reflector-Signature"

// deliveryTimeout bounds one delivery attempt end to end. Retries are
// the task queue's job, not the sender's.
const deliveryTimeout = 30 * time.Second

// Sender posts signed payloads to webhook endpoints.
type Sender struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewSender creates a webhook sender.
func NewSender() *Sender {
	return &Sender{
		http:   resty.New().SetTimeout(deliveryTimeout).SetHeader("User-Agent", version.Full()),
		logger: slog.Default().With("component", "webhook"),
	}
}

// Send marshals payload, signs it with secret and posts it to url.
// Any network error or non-2xx response is returned to the caller.
func (s *Sender) Send(ctx context.Context, url, secret string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	signature := Sign(secret, time.Now(), body)
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(SignatureHeader, signature).
		SetBody(body).
		Post(url)
	if err != nil {
		return fmt.Errorf("webhook delivery to %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook delivery to %s: endpoint responded %s", url, resp.Status())
	}

	s.logger.Info("Webhook delivered", "url", url, "status", resp.StatusCode(), "bytes", len(body))
	return nil
}

// Sign computes the signature header value for a body at a given moment.
// The MAC covers "<unix>.<body>" so the timestamp cannot be swapped out.
func Sign(secret string, at time.Time, body []byte) string {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(body)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

// Verify checks a received signature against the raw body. tolerance
// bounds the accepted clock skew; zero disables the timestamp check.
// Intended for receiver-side use and for tests.
func Verify(secret, signature string, body []byte, now time.Time, tolerance time.Duration) error {
	var ts int64
	var mac string
	for _, part := range strings.Split(signature, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("malformed timestamp %q", v)
			}
			ts = n
		case "v1":
			mac = v
		}
	}
	if ts == 0 || mac == "" {
		return fmt.Errorf("malformed signature %q", signature)
	}
	if tolerance > 0 {
		age := now.Sub(time.Unix(ts, 0))
		if age > tolerance || age < -tolerance {
			return fmt.Errorf("signature timestamp outside tolerance: %s", age)
		}
	}

	expected := Sign(secret, time.Unix(ts, 0), body)
	_, want, _ := strings.Cut(expected, "v1=")
	if subtle.ConstantTimeCompare([]byte(mac), []byte(want)) != 1 {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
