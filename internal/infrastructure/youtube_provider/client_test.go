package youtubeprovider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"ytworth/internal/models"
)

type mockHTTPClient struct {
	calls   int
	lastReq *http.Request
	status  int
	body    string
	err     error
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.calls++
	m.lastReq = req

	if m.err != nil {
		return nil, m.err
	}

	status := m.status
	if status == 0 {
		status = http.StatusOK
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Header:     make(http.Header),
	}, nil
}

type dummyLogger struct{}

func (dummyLogger) Infof(string, ...any)  {}
func (dummyLogger) Errorf(string, ...any) {}
func (dummyLogger) Warnf(string, ...any)  {}
func (dummyLogger) Info(...any)           {}

func newTestClient(t *testing.T, mockHTTP *mockHTTPClient) *Client {
	t.Helper()

	c, err := NewClient(mockHTTP, Config{
		BaseURL: "https://fake-youtube.test/youtube/v3/videos",
		APIKey:  "TEST_KEY",
	}, dummyLogger{})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return c
}

func TestClient_GetVideoStats_UsesSingleHTTPCallAndParses(t *testing.T) {
	mockHTTP := &mockHTTPClient{body: `{
  "kind": "youtube#videoListResponse",
  "items": [
    {
      "id": "dQw4w9WgXcQ",
      "statistics": {
        "viewCount": "50000",
        "likeCount": "10",
        "commentCount": "5"
      }
    }
  ]
}`}
	c := newTestClient(t, mockHTTP)

	stats, err := c.GetVideoStats(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetVideoStats returned error: %v", err)
	}

	if mockHTTP.calls != 1 {
		t.Fatalf("expected 1 HTTP call, got %d", mockHTTP.calls)
	}

	req := mockHTTP.lastReq
	if req.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", req.Method)
	}
	if req.Body != nil && req.Body != http.NoBody {
		t.Fatalf("expected no request body")
	}
	if req.URL.Path != "/youtube/v3/videos" {
		t.Fatalf("unexpected path %q", req.URL.Path)
	}

	q := req.URL.Query()
	if got := q.Get("key"); got != "TEST_KEY" {
		t.Fatalf("expected key=TEST_KEY, got %q", got)
	}
	if got := q.Get("part"); got != "statistics" {
		t.Fatalf("expected part=statistics, got %q", got)
	}
	if got := q.Get("id"); got != "dQw4w9WgXcQ" {
		t.Fatalf("expected id=dQw4w9WgXcQ, got %q", got)
	}

	if !stats.Views.Known || stats.Views.Value != 50000 {
		t.Fatalf("expected 50000 known views, got %+v", stats.Views)
	}
}

func TestClient_GetVideoStats_EmptyItemsIsAbsent(t *testing.T) {
	c := newTestClient(t, &mockHTTPClient{body: `{"items": []}`})

	stats, err := c.GetVideoStats(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Views.Known {
		t.Fatalf("expected unknown views, got %+v", stats.Views)
	}
}

func TestClient_GetVideoStats_BadStatus(t *testing.T) {
	mockHTTP := &mockHTTPClient{
		status: http.StatusForbidden,
		body:   `{"error": {"code": 403, "message": "quota exceeded"}}`,
	}
	c := newTestClient(t, mockHTTP)

	_, err := c.GetVideoStats(context.Background(), "abc")
	if !errors.Is(err, models.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_GetVideoStats_APIErrorShowsGenericMessage(t *testing.T) {
	c := newTestClient(t, &mockHTTPClient{
		status: http.StatusBadRequest,
		body:   `{"error":{"code":400,"message":"API key not valid"}}`,
	})

	_, err := c.GetVideoStats(context.Background(), "abc")
	if !errors.Is(err, models.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if got := models.UserMessage(err); got != models.MessageInvalidURL {
		t.Fatalf("expected %q, got %q", models.MessageInvalidURL, got)
	}
}

func TestClient_GetVideoStats_TransportError(t *testing.T) {
	c := newTestClient(t, &mockHTTPClient{err: errors.New("connection refused")})

	_, err := c.GetVideoStats(context.Background(), "abc")
	if !errors.Is(err, models.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_GetVideoStats_InvalidJSON(t *testing.T) {
	c := newTestClient(t, &mockHTTPClient{body: `<html>oops</html>`})

	_, err := c.GetVideoStats(context.Background(), "abc")
	if !errors.Is(err, models.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_GetVideoStats_MalformedViewCount(t *testing.T) {
	c := newTestClient(t, &mockHTTPClient{body: `{"items":[{"statistics":{"viewCount":"lots"}}]}`})

	_, err := c.GetVideoStats(context.Background(), "abc")
	if !errors.Is(err, models.ErrMalformedStatistics) {
		t.Fatalf("expected ErrMalformedStatistics, got %v", err)
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(&mockHTTPClient{}, Config{}, dummyLogger{}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestStatisticsResponse_ViewCount(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantKnown bool
		wantValue int64
		wantErr   error
	}{
		{"string count", `{"items":[{"statistics":{"viewCount":"1000"}}]}`, true, 1000, nil},
		{"numeric count", `{"items":[{"statistics":{"viewCount":42}}]}`, true, 42, nil},
		{"zero count", `{"items":[{"statistics":{"viewCount":"0"}}]}`, true, 0, nil},
		{"no items key", `{}`, false, 0, nil},
		{"empty items", `{"items":[]}`, false, 0, nil},
		{"no statistics", `{"items":[{"id":"x"}]}`, false, 0, nil},
		{"no view count", `{"items":[{"statistics":{"likeCount":"3"}}]}`, false, 0, nil},
		{"null view count", `{"items":[{"statistics":{"viewCount":null}}]}`, false, 0, nil},
		{"negative", `{"items":[{"statistics":{"viewCount":"-5"}}]}`, false, 0, models.ErrMalformedStatistics},
		{"fractional", `{"items":[{"statistics":{"viewCount":1.5}}]}`, false, 0, models.ErrMalformedStatistics},
		{"object", `{"items":[{"statistics":{"viewCount":{}}}]}`, false, 0, models.ErrMalformedStatistics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp StatisticsResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			got, err := resp.ViewCount()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Known != tt.wantKnown || got.Value != tt.wantValue {
				t.Fatalf("got %+v, want known=%v value=%d", got, tt.wantKnown, tt.wantValue)
			}
		})
	}
}
