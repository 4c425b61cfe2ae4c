package innflow

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"innflow/config"
	"innflow/infras/otel"
	"innflow/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	pathGuests     = "/guests"
	pathBookings   = "/bookings"
	pathRooms      = "/rooms"
	pathMyBookings = "/bookings/me"
)

// Client talks to the InnFlow REST API.
type Client interface {
	CreateGuest(ctx context.Context, guest Guest) (Guest, error)
	CreateBooking(ctx context.Context, booking Booking) (Booking, error)
	ListRooms(ctx context.Context) ([]Room, error)
	MyBookings(ctx context.Context, token string) ([]HistoryRecord, error)
}

type clientImpl struct {
	httpClient     *http.Client
	baseURL        string
	historyBaseURL string
	otel           otel.Otel
}

// New builds a client from the EXTERNAL_INNFLOW_* settings. A zero timeout
// leaves requests bounded only by the caller's context.
func New(cfg *config.Config, ot otel.Otel) Client {
	return NewWithHTTPClient(
		&http.Client{Timeout: time.Duration(cfg.External.InnFlow.TimeoutSeconds) * time.Second},
		cfg.External.InnFlow.BaseURL,
		cfg.External.InnFlow.HistoryBaseURL,
		ot,
	)
}

func NewWithHTTPClient(httpClient *http.Client, baseURL, historyBaseURL string, ot otel.Otel) Client {
	if historyBaseURL == "" {
		historyBaseURL = baseURL
	}

	return &clientImpl{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(baseURL, "/"),
		historyBaseURL: strings.TrimRight(historyBaseURL, "/"),
		otel:           ot,
	}
}

// CreateGuest implements Client.
func (c *clientImpl) CreateGuest(ctx context.Context, guest Guest) (res Guest, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = c.doJSON(ctx, OpCreateGuest, http.MethodPost, c.baseURL+pathGuests, nil, guest, &res)

	return res, err
}

// CreateBooking implements Client.
func (c *clientImpl) CreateBooking(ctx context.Context, booking Booking) (res Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("innflow.room_id", booking.RoomID)

	err = c.doJSON(ctx, OpCreateBooking, http.MethodPost, c.baseURL+pathBookings, nil, booking, &res)

	return res, err
}

// ListRooms implements Client.
func (c *clientImpl) ListRooms(ctx context.Context) (res []Room, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = c.doJSON(ctx, OpListRooms, http.MethodGet, c.baseURL+pathRooms, nil, nil, &res)

	return res, err
}

// MyBookings implements Client.
func (c *clientImpl) MyBookings(ctx context.Context, token string) (res []HistoryRecord, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".MyBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	headers := map[string]string{constant.RequestHeaderAuthToken: token}

	err = c.doJSON(ctx, OpMyBookings, http.MethodGet, c.historyBaseURL+pathMyBookings, headers, nil, &res)

	return res, err
}

func (c *clientImpl) doJSON(ctx context.Context, op, method, url string, headers map[string]string, reqBody, respBody any) error {
	var body io.Reader

	if reqBody != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return &Error{Op: op, Cause: fmt.Errorf("failed to encode request: %w", err)}
		}

		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &Error{Op: op, Cause: fmt.Errorf("failed to build request: %w", err)}
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if reqBody != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("op", op).Str("url", url).Msg("failed to call innflow api")

		return &Error{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("failed to read response: %w", err)}
	}

	log.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("innflow api call")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(op, resp.StatusCode, data)
	}

	if respBody == nil {
		return nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &Error{Op: op, Status: resp.StatusCode, Cause: errors.New("empty response body")}
	}

	if err := json.Unmarshal(data, respBody); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
