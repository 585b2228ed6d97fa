package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/webhook"
)

// ---------------------------------------------------------------------------
// FakeS3: an in-memory object store speaking enough of the S3 REST API
// (path-style) for the real SDK client. Presigned GETs are served with
// http.ServeContent so ffmpeg/ffprobe range requests work.

type s3Object struct {
	data        []byte
	contentType string
}

type FakeS3 struct {
	t     *testing.T
	srv   *httptest.Server
	start time.Time

	mu      sync.Mutex
	objects map[string]s3Object // "bucket/key"
}

func NewFakeS3(t *testing.T) *FakeS3 {
	t.Helper()
	f := &FakeS3{t: t, start: time.Now(), objects: make(map[string]s3Object)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeS3) URL() string { return f.srv.URL }

// Put seeds an object directly, bypassing HTTP.
func (f *FakeS3) Put(bucket, key string, data []byte, contentType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = s3Object{data: data, contentType: contentType}
}

// Object returns a stored object's bytes.
func (f *FakeS3) Object(bucket, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[bucket+"/"+key]
	return obj.data, ok
}

// Keys lists stored keys in a bucket under prefix, sorted.
func (f *FakeS3) Keys(bucket, prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for path := range f.objects {
		if strings.HasPrefix(path, bucket+"/"+prefix) {
			keys = append(keys, strings.TrimPrefix(path, bucket+"/"))
		}
	}
	sort.Strings(keys)
	return keys
}

func (f *FakeS3) handle(w http.ResponseWriter, r *http.Request) {
	bucket, key := splitBucketKey(r.URL.Path)
	if bucket == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodPut && key != "":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// Newer SDKs stream unseekable bodies with aws-chunked framing.
		if strings.Contains(r.Header.Get("Content-Encoding"), "aws-chunked") {
			body = decodeAWSChunked(body)
		}
		f.mu.Lock()
		f.objects[bucket+"/"+key] = s3Object{data: body, contentType: r.Header.Get("Content-Type")}
		f.mu.Unlock()
		w.Header().Set("ETag", `"e2e"`)

	case (r.Method == http.MethodGet || r.Method == http.MethodHead) && key == "":
		f.serveList(w, r, bucket)

	case r.Method == http.MethodGet || r.Method == http.MethodHead:
		f.mu.Lock()
		obj, ok := f.objects[bucket+"/"+key]
		f.mu.Unlock()
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey", "The specified key does not exist.")
			return
		}
		if obj.contentType != "" {
			w.Header().Set("Content-Type", obj.contentType)
		}
		http.ServeContent(w, r, "", f.start, bytes.NewReader(obj.data))

	case r.Method == http.MethodDelete && key != "":
		f.mu.Lock()
		delete(f.objects, bucket+"/"+key)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *FakeS3) serveList(w http.ResponseWriter, r *http.Request, bucket string) {
	prefix := r.URL.Query().Get("prefix")
	keys := f.Keys(bucket, prefix)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
	b.WriteString(`<Name>` + bucket + `</Name><Prefix>` + prefix + `</Prefix>`)
	b.WriteString(`<MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>`)
	modified := f.start.UTC().Format("2006-01-02T15:04:05.000Z")
	f.mu.Lock()
	for _, key := range keys {
		obj := f.objects[bucket+"/"+key]
		b.WriteString(`<Contents><Key>` + key + `</Key>`)
		b.WriteString(`<Size>` + strconv.Itoa(len(obj.data)) + `</Size>`)
		b.WriteString(`<LastModified>` + modified + `</LastModified></Contents>`)
	}
	f.mu.Unlock()
	b.WriteString(`</ListBucketResult>`)

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(b.String()))
}

func splitBucketKey(path string) (bucket, key string) {
	trimmed := strings.TrimPrefix(path, "/")
	bucket, key, _ = strings.Cut(trimmed, "/")
	return bucket, key
}

func writeS3Error(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><RequestId>e2e</RequestId></Error>`, code, message)
}

// decodeAWSChunked strips aws-chunked framing: hex size lines (with an
// optional chunk signature) separating raw chunks, terminated by a zero
// chunk. Returns the input untouched if it does not parse.
func decodeAWSChunked(raw []byte) []byte {
	var out []byte
	rest := raw
	for {
		i := bytes.Index(rest, []byte("\r\n"))
		if i < 0 {
			return raw
		}
		head := rest[:i]
		if j := bytes.IndexByte(head, ';'); j >= 0 {
			head = head[:j]
		}
		size, err := strconv.ParseInt(string(head), 16, 64)
		if err != nil {
			return raw
		}
		rest = rest[i+2:]
		if size == 0 {
			return out
		}
		if int64(len(rest)) < size {
			return raw
		}
		out = append(out, rest[:size]...)
		rest = rest[size:]
		if len(rest) >= 2 && rest[0] == '\r' && rest[1] == '\n' {
			rest = rest[2:]
		}
	}
}

// ---------------------------------------------------------------------------
// FakeASR: answers the transcription API with scripted word lists,
// routed by substring of the presigned audio URL.

type ASRRequest struct {
	AudioURL string `json:"audio_url"`
	Language string `json:"language"`
}

type FakeASR struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	requests []ASRRequest

	// Script maps an audio URL substring (e.g. "track_0") to the words
	// returned for it. URLs matching nothing get defaultASRWords.
	Script map[string][]models.Word
}

func NewFakeASR(t *testing.T) *FakeASR {
	t.Helper()
	f := &FakeASR{t: t, Script: make(map[string][]models.Word)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeASR) URL() string { return f.srv.URL }

func (f *FakeASR) Requests() []ASRRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ASRRequest(nil), f.requests...)
}

var defaultASRWords = []models.Word{
	{Text: "Hello", Start: 0.2, End: 0.6},
	{Text: "there.", Start: 0.6, End: 1.0},
}

func (f *FakeASR) handle(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, http.MethodPost, r.Method)
	assert.Equal(f.t, "/v1/transcribe", r.URL.Path)

	var req ASRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	words := defaultASRWords
	for sub, scripted := range f.Script {
		if strings.Contains(req.AudioURL, sub) {
			words = scripted
			break
		}
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"words": words})
}

// ---------------------------------------------------------------------------
// FakeLLM: a chat-completions endpoint that recognizes each pipeline
// prompt by a stable phrase and answers with scripted content.

type FakeLLM struct {
	t   *testing.T
	srv *httptest.Server

	mu    sync.Mutex
	calls map[string]int

	TopicTitle     string
	TopicSummary   string
	MeetingTitle   string
	Subjects       []string
	SubjectSummary string
	Recap          string
	Items          models.ActionItems
}

func NewFakeLLM(t *testing.T) *FakeLLM {
	t.Helper()
	f := &FakeLLM{
		t:     t,
		calls: make(map[string]int),

		TopicTitle:     "beta rollout planning",
		TopicSummary:   "The group reviewed the beta launch and discussed the wider rollout.",
		MeetingTitle:   "Beta Rollout Planning",
		Subjects:       []string{"Beta launch", "Rollout schedule"},
		SubjectSummary: "Speaker 0 reported the beta shipped and Speaker 1 proposed the next steps.",
		Recap:          "The meeting confirmed the beta launch and set a rollout plan for next week.",
		Items: models.ActionItems{
			Decisions: []string{"Proceed with the wider rollout next week"},
			NextSteps: []string{"Speaker 1 schedules the rollout review"},
		},
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeLLM) URL() string { return f.srv.URL }

// Calls reports how often a pipeline stage hit the endpoint.
func (f *FakeLLM) Calls(stage string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[stage]
}

func (f *FakeLLM) handle(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "/v1/chat/completions", r.URL.Path)

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var combined strings.Builder
	for _, m := range req.Messages {
		combined.WriteString(m.Content)
		combined.WriteString("\n")
	}
	prompt := combined.String()

	f.mu.Lock()
	var stage string
	var content string
	switch {
	case strings.Contains(prompt, "one segment of a meeting transcript"):
		stage = "topic"
		content = mustJSON(map[string]string{"title": f.TopicTitle, "summary": f.TopicSummary})
	case strings.Contains(prompt, "topic titles of one meeting"):
		stage = "title"
		content = mustJSON(map[string]string{"title": f.MeetingTitle})
	case strings.Contains(prompt, "List the main subjects"):
		stage = "subjects"
		content = mustJSON(map[string]any{"subjects": f.Subjects})
	case strings.Contains(prompt, "summarizing everything said about"):
		stage = "subject"
		content = f.SubjectSummary
	case strings.Contains(prompt, "per-subject summaries of one meeting"):
		stage = "recap"
		content = f.Recap
	case strings.Contains(prompt, "decisions that were made"):
		stage = "action_items"
		content = mustJSON(map[string]any{"decisions": f.Items.Decisions, "next_steps": f.Items.NextSteps})
	default:
		f.mu.Unlock()
		f.t.Errorf("fake llm: unrecognized prompt: %.120s", prompt)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.calls[stage]++
	f.mu.Unlock()

	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-e2e",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	})
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// ---------------------------------------------------------------------------
// FakeZulip: records message creates and edits.

type ZulipMessage struct {
	ID      int64
	Stream  string
	Topic   string
	Content string
}

type ZulipUpdate struct {
	ID      int64
	Content string
}

type FakeZulip struct {
	t   *testing.T
	srv *httptest.Server

	mu      sync.Mutex
	nextID  int64
	sent    []ZulipMessage
	updates []ZulipUpdate
}

func NewFakeZulip(t *testing.T) *FakeZulip {
	t.Helper()
	f := &FakeZulip{t: t, nextID: 100}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeZulip) URL() string { return f.srv.URL }

func (f *FakeZulip) Sent() []ZulipMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ZulipMessage(nil), f.sent...)
}

func (f *FakeZulip) Updates() []ZulipUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ZulipUpdate(nil), f.updates...)
}

func (f *FakeZulip) handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/messages":
		assert.Equal(f.t, "stream", r.FormValue("type"))
		f.mu.Lock()
		f.nextID++
		id := f.nextID
		f.sent = append(f.sent, ZulipMessage{
			ID:      id,
			Stream:  r.FormValue("to"),
			Topic:   r.FormValue("topic"),
			Content: r.FormValue("content"),
		})
		f.mu.Unlock()
		_, _ = fmt.Fprintf(w, `{"result":"success","msg":"","id":%d}`, id)

	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/v1/messages/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/v1/messages/"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.updates = append(f.updates, ZulipUpdate{ID: id, Content: r.FormValue("content")})
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"result":"success","msg":""}`))

	default:
		f.t.Errorf("fake zulip: unexpected %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

// ---------------------------------------------------------------------------
// WebhookSink: captures deliveries so tests can verify payload and
// signature with the receiver-side helper.

type WebhookDelivery struct {
	Body      []byte
	Signature string
}

type WebhookSink struct {
	t   *testing.T
	srv *httptest.Server

	mu         sync.Mutex
	deliveries []WebhookDelivery
}

func NewWebhookSink(t *testing.T) *WebhookSink {
	t.Helper()
	f := &WebhookSink{t: t}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *WebhookSink) URL() string { return f.srv.URL }

func (f *WebhookSink) Deliveries() []WebhookDelivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]WebhookDelivery(nil), f.deliveries...)
}

func (f *WebhookSink) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	f.mu.Lock()
	f.deliveries = append(f.deliveries, WebhookDelivery{
		Body:      body,
		Signature: r.Header.Get(webhook.SignatureHeader),
	})
	f.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}
