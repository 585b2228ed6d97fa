package objectstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
)

// newTestStore points a real SDK client at an httptest server so the
// full request/sign/deserialize path is exercised.
func newTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := New(context.Background(), config.StorageConfig{
		URL:            srv.URL,
		Region:         "us-east-1",
		Bucket:         "recordings",
		AccessKey:      "test-access",
		SecretKey:      "test-secret",
		ForcePathStyle: true,
	})
	require.NoError(t, err)
	return store
}

func s3ErrorXML(code, message string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><Error><Code>` + code +
		`</Code><Message>` + message + `</Message><RequestId>test</RequestId></Error>`
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")
}

func TestStore_Put(t *testing.T) {
	var mu sync.Mutex
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotMethod, gotPath, gotContentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		gotBody = body
		mu.Unlock()
		w.Header().Set("ETag", `"d41d8cd9"`)
	}))

	err := store.Put(context.Background(), "recordings",
		"tmp/tr1/tracks/padded_0.webm", bytes.NewReader([]byte("webm bytes")), "audio/webm")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/recordings/tmp/tr1/tracks/padded_0.webm", gotPath)
	assert.Equal(t, "audio/webm", gotContentType)
	assert.Equal(t, []byte("webm bytes"), gotBody)
}

func TestStore_Get(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recordings/tr1/audio.mp3":
			_, _ = w.Write([]byte("mp3 bytes"))
		default:
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(s3ErrorXML("NoSuchKey", "The specified key does not exist.")))
		}
	}))

	t.Run("existing key streams the body", func(t *testing.T) {
		body, err := store.Get(context.Background(), "recordings", "tr1/audio.mp3")
		require.NoError(t, err)
		defer body.Close()

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "mp3 bytes", string(data))
	})

	t.Run("missing key is ErrNotFound", func(t *testing.T) {
		_, err := store.Get(context.Background(), "recordings", "tr1/missing.mp3")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))

		var storeErr *Error
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "get", storeErr.Op)
		assert.Equal(t, "tr1/missing.mp3", storeErr.Key)
	})
}

func TestStore_Get_Forbidden(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(s3ErrorXML("AccessDenied", "Access Denied")))
	}))

	_, err := store.Get(context.Background(), "recordings", "tr1/audio.mp3")
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	assert.False(t, IsTransient(err))
}

func TestStore_Download(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))

	var buf bytes.Buffer
	n, err := store.Download(context.Background(), "recordings", "tr1/audio.mp3", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, "0123456789", buf.String())
}

func TestStore_HeadAndExists(t *testing.T) {
	lastModified := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recordings/tr1/audio.mp3" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", "2048")
		w.Header().Set("Last-Modified", lastModified.Format(http.TimeFormat))
	}))

	t.Run("head returns metadata", func(t *testing.T) {
		info, err := store.Head(context.Background(), "recordings", "tr1/audio.mp3")
		require.NoError(t, err)
		assert.Equal(t, int64(2048), info.Size)
		assert.Equal(t, "audio/mpeg", info.ContentType)
		assert.WithinDuration(t, lastModified, info.LastModified, time.Second)
	})

	t.Run("head on missing key is ErrNotFound", func(t *testing.T) {
		_, err := store.Head(context.Background(), "recordings", "tr1/gone.mp3")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.Exists(context.Background(), "recordings", "tr1/audio.mp3")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(context.Background(), "recordings", "tr1/gone.mp3")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("delete succeeds", func(t *testing.T) {
		store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		require.NoError(t, store.Delete(context.Background(), "recordings", "tr1/audio.mp3"))
	})

	t.Run("deleting a missing key succeeds", func(t *testing.T) {
		store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(s3ErrorXML("NoSuchKey", "The specified key does not exist.")))
		}))
		require.NoError(t, store.Delete(context.Background(), "recordings", "tr1/gone.mp3"))
	})
}

func listObjectsXML(prefix string, keys ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
	b.WriteString(`<Name>recordings</Name><Prefix>` + prefix + `</Prefix>`)
	b.WriteString(`<MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>`)
	for _, key := range keys {
		b.WriteString(`<Contents><Key>` + key + `</Key><Size>10</Size></Contents>`)
	}
	b.WriteString(`</ListBucketResult>`)
	return b.String()
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tmp/tr1/", r.URL.Query().Get("prefix"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(listObjectsXML("tmp/tr1/",
			"tmp/tr1/tracks/padded_0.webm", "tmp/tr1/tracks/padded_1.webm")))
	}))

	keys, err := store.List(context.Background(), "recordings", "tmp/tr1/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"tmp/tr1/tracks/padded_0.webm",
		"tmp/tr1/tracks/padded_1.webm",
	}, keys)
}

func TestStore_DeletePrefix(t *testing.T) {
	var mu sync.Mutex
	var deleted []string

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(listObjectsXML("tmp/tr1/",
				"tmp/tr1/tracks/padded_0.webm", "tmp/tr1/tracks/padded_1.webm")))
		case http.MethodDelete:
			mu.Lock()
			deleted = append(deleted, r.URL.Path)
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	n, err := store.DeletePrefix(context.Background(), "recordings", "tmp/tr1/")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"/recordings/tmp/tr1/tracks/padded_0.webm",
		"/recordings/tmp/tr1/tracks/padded_1.webm",
	}, deleted)
}

func TestStore_DeletePrefix_RefusesEmptyPrefix(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	}))
	_, err := store.DeletePrefix(context.Background(), "recordings", "")
	require.Error(t, err)
}

func TestStore_Presign(t *testing.T) {
	store, err := New(context.Background(), config.StorageConfig{
		URL:            "http://127.0.0.1:9000",
		Region:         "us-east-1",
		Bucket:         "recordings",
		AccessKey:      "test-access",
		SecretKey:      "test-secret",
		ForcePathStyle: true,
	})
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		signed, err := store.PresignGet(context.Background(), "recordings", "tr1/audio.mp3", 15*time.Minute)
		require.NoError(t, err)

		u, err := url.Parse(signed)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", u.Host)
		assert.Equal(t, "/recordings/tr1/audio.mp3", u.Path)
		assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
		assert.Equal(t, "AWS4-HMAC-SHA256", u.Query().Get("X-Amz-Algorithm"))
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	})

	t.Run("put", func(t *testing.T) {
		signed, err := store.PresignPut(context.Background(), "recordings", "tmp/tr1/tracks/padded_0.webm", time.Hour)
		require.NoError(t, err)

		u, err := url.Parse(signed)
		require.NoError(t, err)
		assert.Equal(t, "/recordings/tmp/tr1/tracks/padded_0.webm", u.Path)
		assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	})

	t.Run("distinct operations sign differently", func(t *testing.T) {
		get, err := store.PresignGet(context.Background(), "recordings", "k", time.Minute)
		require.NoError(t, err)
		put, err := store.PresignPut(context.Background(), "recordings", "k", time.Minute)
		require.NoError(t, err)
		assert.NotEqual(t, get, put)
	})
}
