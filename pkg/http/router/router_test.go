package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/bestpath/pkg/engine"
	"github.com/lintang-b-s/bestpath/pkg/http/usecases"
	http_server "github.com/lintang-b-s/bestpath/pkg/http/server"
	"github.com/lintang-b-s/bestpath/pkg/spatialindex"
	"github.com/lintang-b-s/bestpath/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAPI(t *testing.T, config http_server.Config) (*API, http.Handler) {
	t.Helper()
	grid, err := world.ParseGrid([]string{
		"a....",
		".###.",
		"....b",
	}, nil)
	require.NoError(t, err)
	store, err := world.NewStore(grid)
	require.NoError(t, err)
	store.Reveal(store.PointsOfInterest()[0].Coordinate, 10)

	rt := spatialindex.NewRtree()
	rt.Build(store.PointsOfInterest(), zap.NewNop())
	planner := engine.NewPlanner(zap.NewNop())
	service := usecases.NewPlannerService(zap.NewNop(), planner, store, rt, 8)

	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	api := NewAPI(zap.NewNop())
	return api, api.Handler(context.Background(), config, service)
}

type planEnvelope struct {
	Data struct {
		Segments []struct {
			Target struct {
				Row int `json:"row"`
				Col int `json:"col"`
			} `json:"target"`
			Directions []string `json:"directions"`
			Path       string   `json:"path"`
			Cost       int64    `json:"cost"`
		} `json:"segments"`
		Unreachable []json.RawMessage `json:"unreachable"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPlanEndpoint(t *testing.T) {
	_, h := newTestAPI(t, http_server.Config{})

	rec := doRequest(h, http.MethodPost, "/api/plan", "application/json",
		`{"start": {"row": 0, "col": 0}, "targets": [{"row": 0, "col": 4}, {"row": 2, "col": 4}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var resp planEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Segments, 2)
	assert.Equal(t, []string{"right", "right", "right", "right"}, resp.Data.Segments[0].Directions)
	assert.Equal(t, []string{"down", "down"}, resp.Data.Segments[1].Directions)
	assert.NotEmpty(t, resp.Data.Segments[0].Path)
	assert.Empty(t, resp.Data.Unreachable)
}

func TestPlanEndpointRejects(t *testing.T) {
	_, h := newTestAPI(t, http_server.Config{})

	testCases := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{
			name:        "missing start",
			contentType: "application/json",
			body:        `{"targets": [{"row": 0, "col": 4}]}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"start": `,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "unknown tile type",
			contentType: "application/json",
			body:        `{"start": {"row": 0, "col": 0}, "targets": [{"row": 0, "col": 1}], "known": [{"coordinate": {"row": 0, "col": 0}, "type": "marsh"}]}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "no point of interest in range",
			contentType: "application/json",
			body:        `{"start": {"row": 2, "col": 0}, "interest_radius": 1}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "target outside the world",
			contentType: "application/json",
			body:        `{"start": {"row": 0, "col": 0}, "targets": [{"row": 3000000000, "col": 3000000000}], "known": [], "discover": false}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "not json",
			contentType: "text/plain",
			body:        `start=0,0`,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(h, http.MethodPost, "/api/plan", tc.contentType, tc.body)
			assert.Equal(t, tc.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestWorldAndRevealEndpoints(t *testing.T) {
	_, h := newTestAPI(t, http_server.Config{})

	rec := doRequest(h, http.MethodPost, "/api/reveal", "application/json", `{"center": {"row": 2, "col": 4}, "radius": 1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(h, http.MethodGet, "/api/world", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Rows             int `json:"rows"`
			Cols             int `json:"cols"`
			Explored         int `json:"explored"`
			PointsOfInterest int `json:"points_of_interest"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Rows)
	assert.Equal(t, 5, resp.Data.Cols)
	assert.Equal(t, 15, resp.Data.Explored)
	assert.Equal(t, 2, resp.Data.PointsOfInterest)
}

func TestHeartbeatAndRequestID(t *testing.T) {
	_, h := newTestAPI(t, http_server.Config{})

	rec := doRequest(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/world", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	_, h := newTestAPI(t, http_server.Config{UseRateLimit: true, RateLimitRPS: 0.001, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, doRequest(h, http.MethodGet, "/api/world", "", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, http.MethodGet, "/api/world", "", "").Code)
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop())
	h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
}

func TestRealIP(t *testing.T) {
	var got string
	h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.7, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.0.0.7", got)
}

func TestWebsocketPlan(t *testing.T) {
	api, h := newTestAPI(t, http_server.Config{})
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws")
	require.NoError(t, err)

	require.NoError(t, wsutil.WriteClientText(conn,
		[]byte(`{"start": {"row": 0, "col": 0}, "targets": [{"row": 0, "col": 2}]}`)))
	msg, err := wsutil.ReadServerText(conn)
	require.NoError(t, err)

	var resp planEnvelope
	require.NoError(t, json.Unmarshal(msg, &resp))
	require.Nil(t, resp.Error)
	require.Len(t, resp.Data.Segments, 1)
	assert.Equal(t, []string{"right", "right"}, resp.Data.Segments[0].Directions)

	require.NoError(t, wsutil.WriteClientText(conn, []byte(`{"targets": [{"row": 0, "col": 2}]}`)))
	msg, err = wsutil.ReadServerText(conn)
	require.NoError(t, err)
	resp = planEnvelope{}
	require.NoError(t, json.Unmarshal(msg, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusText(http.StatusBadRequest), resp.Error.Code)

	require.NoError(t, conn.Close())
	api.closeWebsockets()
}

func TestWebsocketShutdown(t *testing.T) {
	api, h := newTestAPI(t, http_server.Config{})
	srv := httptest.NewServer(h)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, _, err := ws.Dial(ctx, url)
	require.NoError(t, err)
	defer conn.Close()

	// the session is registered before the first request is answered.
	require.NoError(t, wsutil.WriteClientText(conn,
		[]byte(`{"start": {"row": 0, "col": 0}, "targets": [{"row": 0, "col": 1}]}`)))
	_, err = wsutil.ReadServerText(conn)
	require.NoError(t, err)
	assert.Equal(t, 1, api.hub.Len())

	api.closeWebsockets()
	assert.Equal(t, 0, api.hub.Len())

	_, err = wsutil.ReadServerText(conn)
	assert.Error(t, err, "open sessions are closed on shutdown")

	_, _, _, err = ws.Dial(ctx, url)
	assert.Error(t, err, "no new sessions after shutdown")

	rec := doRequest(h, http.MethodGet, "/ws", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
