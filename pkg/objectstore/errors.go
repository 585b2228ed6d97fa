package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrNotFound is returned when the key (or bucket) does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrForbidden is returned when access is denied, typically an
	// expired presigned URL or bad credentials.
	ErrForbidden = errors.New("object access forbidden")

	// ErrTransient marks 5xx, throttling, and network-level failures.
	// Callers may retry; everything unmarked is permanent.
	ErrTransient = errors.New("transient object store error")
)

// Error carries the operation and object reference alongside the
// classified cause, so both errors.Is against the sentinels and
// errors.As against the SDK types keep working.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Class  error // one of the sentinels above, nil for permanent errors
	Err    error
}

func (e *Error) Error() string {
	ref := "s3://" + e.Bucket
	if e.Key != "" {
		ref += "/" + e.Key
	}
	if e.Class != nil {
		return fmt.Sprintf("objectstore %s %s: %v: %v", e.Op, ref, e.Class, e.Err)
	}
	return fmt.Sprintf("objectstore %s %s: %v", e.Op, ref, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Class != nil {
		return []error{e.Class, e.Err}
	}
	return []error{e.Err}
}

// IsNotFound reports whether err is a missing-key (or bucket) error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden reports whether err is an access-denied error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

func wrapErr(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Bucket: bucket, Key: key, Class: classify(err), Err: err}
}

// classify maps an SDK or network error onto one of the sentinel
// classes. Returns nil for permanent errors.
func classify(err error) error {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) || errors.As(err, &noSuchBucket) {
		return ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return ErrNotFound
		case "AccessDenied", "Forbidden", "ExpiredToken", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return ErrForbidden
		case "RequestTimeout", "SlowDown", "InternalError", "ServiceUnavailable":
			return ErrTransient
		}
	}

	// HEAD responses have no body, so the SDK cannot always model a
	// code; fall back to the HTTP status.
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch {
		case respErr.HTTPStatusCode() == http.StatusNotFound:
			return ErrNotFound
		case respErr.HTTPStatusCode() == http.StatusForbidden:
			return ErrForbidden
		case respErr.HTTPStatusCode() == http.StatusTooManyRequests,
			respErr.HTTPStatusCode() >= http.StatusInternalServerError:
			return ErrTransient
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTransient
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrTransient
	}

	return nil
}
