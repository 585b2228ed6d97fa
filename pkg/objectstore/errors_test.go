package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseErrorWithStatus(status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: status},
			},
			Err: errors.New("request failed"),
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", &types.NoSuchKey{}, ErrNotFound},
		{"head not found", &types.NotFound{}, ErrNotFound},
		{"no such bucket", &types.NoSuchBucket{}, ErrNotFound},
		{"access denied code", &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}, ErrForbidden},
		{"expired token", &smithy.GenericAPIError{Code: "ExpiredToken"}, ErrForbidden},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, ErrTransient},
		{"internal error", &smithy.GenericAPIError{Code: "InternalError"}, ErrTransient},
		{"status 403", responseErrorWithStatus(http.StatusForbidden), ErrForbidden},
		{"status 404", responseErrorWithStatus(http.StatusNotFound), ErrNotFound},
		{"status 429", responseErrorWithStatus(http.StatusTooManyRequests), ErrTransient},
		{"status 503", responseErrorWithStatus(http.StatusServiceUnavailable), ErrTransient},
		{"deadline exceeded", context.DeadlineExceeded, ErrTransient},
		{"dial failure", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, ErrTransient},
		{"wrapped sdk error", fmt.Errorf("operation: %w", &types.NoSuchKey{}), ErrNotFound},
		{"plain error is permanent", errors.New("malformed xml"), nil},
		{"status 400 is permanent", responseErrorWithStatus(http.StatusBadRequest), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestClassify_NetTimeout(t *testing.T) {
	var err error = &net.DNSError{Name: "example.com", IsTimeout: true}
	assert.Equal(t, ErrTransient, classify(err))
}

func TestWrapErr(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrapErr("get", "recordings", "a.mp3", nil))
	})

	t.Run("classified cause matches sentinel and sdk type", func(t *testing.T) {
		cause := &types.NoSuchKey{}
		err := wrapErr("get", "recordings", "missing.mp3", cause)

		assert.True(t, IsNotFound(err))
		assert.False(t, IsTransient(err))

		var storeErr *Error
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "get", storeErr.Op)
		assert.Equal(t, "recordings", storeErr.Bucket)
		assert.Equal(t, "missing.mp3", storeErr.Key)

		var sdkErr *types.NoSuchKey
		assert.ErrorAs(t, err, &sdkErr)
		assert.Contains(t, err.Error(), "s3://recordings/missing.mp3")
	})

	t.Run("permanent error keeps cause without a class", func(t *testing.T) {
		err := wrapErr("put", "recordings", "a.mp3", errors.New("boom"))
		assert.False(t, IsNotFound(err))
		assert.False(t, IsForbidden(err))
		assert.False(t, IsTransient(err))
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("timeout classifies transient", func(t *testing.T) {
		err := wrapErr("get", "recordings", "a.mp3", context.DeadlineExceeded)
		assert.True(t, IsTransient(err))
	})
}

// Exists/Delete below rely on classification of real HTTP responses;
// keep a direct check that a wrapped 404 still satisfies errors.Is
// after a second fmt.Errorf wrap, the shape task handlers produce.
func TestWrapErr_SurvivesRewrapping(t *testing.T) {
	inner := wrapErr("head", "recordings", "gone.mp3", &types.NotFound{})
	outer := fmt.Errorf("probe source %d: %w", 3, inner)
	assert.True(t, IsNotFound(outer))

	var storeErr *Error
	assert.ErrorAs(t, outer, &storeErr)
	assert.Equal(t, "head", storeErr.Op)
}
