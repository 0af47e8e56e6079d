package rsvpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/rsvpclient"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// fakeServer keeps rsvps in memory and answers like the real API does.
type fakeServer struct {
	mu       sync.Mutex
	rsvps    []model.Rsvp
	listHits atomic.Int32
	status   int
	delay    time.Duration
}

func (s *fakeServer) handle(ctx *fasthttp.RequestCtx) {
	time.Sleep(s.delay)
	if s.status != 0 {
		ctx.SetStatusCode(s.status)
		ctx.SetBodyString(`{"message":"boom"}`)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx.SetContentType("application/json")
	switch string(ctx.Method()) {
	case fasthttp.MethodGet:
		s.listHits.Add(1)
		body, _ := json.Marshal(s.rsvps)
		ctx.SetBody(body)
	case fasthttp.MethodPost:
		var candidate rsvpclient.Candidate
		if err := json.Unmarshal(ctx.PostBody(), &candidate); err != nil || candidate.Name == "" {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			ctx.SetBodyString(`{"field":"name","message":"Name is required"}`)
			return
		}
		rsvp := model.Rsvp{
			ID:         uint(len(s.rsvps) + 1),
			Name:       candidate.Name,
			Email:      candidate.Email,
			GuestCount: candidate.GuestCount,
			Status:     candidate.Status,
			Message:    candidate.Message,
			CreatedAt:  time.Now().UTC(),
		}
		s.rsvps = append(s.rsvps, rsvp)
		body, _ := json.Marshal(rsvp)
		ctx.SetStatusCode(fasthttp.StatusCreated)
		ctx.SetBody(body)
	}
}

func startServer(t *testing.T, srv *fakeServer) *rsvpclient.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: srv.handle}
	go server.Serve(ln)
	t.Cleanup(func() {
		server.Shutdown()
	})

	return rsvpclient.New("http://rsvp.test/", rsvpclient.WithDial(func(addr string) (net.Conn, error) {
		return ln.Dial()
	}))
}

func TestListEmpty(t *testing.T) {
	client := startServer(t, &fakeServer{})

	rsvps, err := client.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rsvps)
	assert.Empty(t, rsvps)
}

func TestListIsCachedUntilCreate(t *testing.T) {
	srv := &fakeServer{}
	client := startServer(t, srv)
	ctx := context.Background()

	_, err := client.List(ctx)
	require.NoError(t, err)
	_, err = client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.listHits.Load())

	created, err := client.Create(ctx, rsvpclient.Candidate{Name: "Ada", GuestCount: 2, Status: model.StatusAttending})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Ada", created.Name)

	rsvps, err := client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), srv.listHits.Load())
	require.Len(t, rsvps, 1)
	assert.Equal(t, created.ID, rsvps[0].ID)
}

func TestInvalidate(t *testing.T) {
	srv := &fakeServer{}
	client := startServer(t, srv)
	ctx := context.Background()

	_, err := client.List(ctx)
	require.NoError(t, err)
	client.Invalidate()
	_, err = client.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), srv.listHits.Load())
}

func TestCreateValidationError(t *testing.T) {
	srv := &fakeServer{}
	client := startServer(t, srv)
	ctx := context.Background()

	_, err := client.List(ctx)
	require.NoError(t, err)

	_, err = client.Create(ctx, rsvpclient.Candidate{GuestCount: 1})

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
	assert.Equal(t, "Name is required", validationErr.Message)

	// A rejected submission leaves the cache in place
	_, err = client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.listHits.Load())
}

func TestServerFailures(t *testing.T) {
	client := startServer(t, &fakeServer{status: fasthttp.StatusInternalServerError})
	ctx := context.Background()

	_, err := client.List(ctx)
	assert.True(t, errors.Is(err, rsvpclient.ErrFetchFailed))

	_, err = client.Create(ctx, rsvpclient.Candidate{Name: "Ada", GuestCount: 1})
	assert.True(t, errors.Is(err, rsvpclient.ErrSubmitFailed))
}

func TestDeadlineIsHonored(t *testing.T) {
	client := startServer(t, &fakeServer{delay: 500 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.List(ctx)
	assert.ErrorIs(t, err, rsvpclient.ErrFetchFailed)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestCancelledContext(t *testing.T) {
	srv := &fakeServer{}
	client := startServer(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.List(ctx)
	assert.ErrorIs(t, err, rsvpclient.ErrFetchFailed)
	assert.Equal(t, int32(0), srv.listHits.Load())
}
