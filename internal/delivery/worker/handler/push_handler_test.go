package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	mockUsecase "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(batch usecase.BatchUsecase) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
		Batch:  batch,
	})
}

// pushRequest builds a Pub/Sub push envelope around the given command.
func pushRequest(t *testing.T, cmd BatchCommand, attrs map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(cmd)
	require.NoError(t, err)

	var envelope PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString(payload)
	envelope.Message.Attributes = attrs
	envelope.Message.MessageID = "msg-1"
	envelope.Subscription = "projects/local/subscriptions/trigger-sub"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(handler *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler.HandlePush(c)

	return rec
}

func TestPushHandler_AllScope(t *testing.T) {
	batch := mockUsecase.NewMockBatchUsecase(t)
	batch.EXPECT().EvaluateAllUsers(mock.Anything).
		Return(&usecase.BatchSummary{UsersEvaluated: 3, TriggersDelivered: 1}, nil).Once()

	rec := serve(newPushHandler(batch), pushRequest(t, BatchCommand{Scope: ScopeAll}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_InterestScope(t *testing.T) {
	batch := mockUsecase.NewMockBatchUsecase(t)
	batch.EXPECT().EvaluateUsersByInterest(mock.Anything, entity.InterestWeather).
		Return(&usecase.BatchSummary{UsersEvaluated: 2}, nil).Once()

	cmd := BatchCommand{Scope: ScopeInterest, Interest: "weather"}
	rec := serve(newPushHandler(batch), pushRequest(t, cmd, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BatchFailureRequestsRedelivery(t *testing.T) {
	batch := mockUsecase.NewMockBatchUsecase(t)
	batch.EXPECT().EvaluateAllUsers(mock.Anything).Return(nil, assert.AnError).Once()

	rec := serve(newPushHandler(batch), pushRequest(t, BatchCommand{Scope: ScopeAll}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownScopeIsAcknowledged(t *testing.T) {
	// Redelivering a malformed command can never succeed, so it must be acked.
	batch := mockUsecase.NewMockBatchUsecase(t)

	rec := serve(newPushHandler(batch), pushRequest(t, BatchCommand{Scope: "everything"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UnknownInterestIsAcknowledged(t *testing.T) {
	batch := mockUsecase.NewMockBatchUsecase(t)

	cmd := BatchCommand{Scope: ScopeInterest, Interest: "astrology"}
	rec := serve(newPushHandler(batch), pushRequest(t, cmd, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_InvalidBase64(t *testing.T) {
	batch := mockUsecase.NewMockBatchUsecase(t)

	envelope := `{"message":{"data":"not-base64!!","messageId":"msg-1"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(envelope)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(newPushHandler(batch), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	batch := mockUsecase.NewMockBatchUsecase(t)
	batch.EXPECT().EvaluateAllUsers(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.BatchSummary, error) {
			assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.BatchSummary{}, nil
		}).Once()

	attrs := map[string]string{"request_id": "req-123"}
	rec := serve(newPushHandler(batch), pushRequest(t, BatchCommand{Scope: ScopeAll}, attrs))

	assert.Equal(t, http.StatusOK, rec.Code)
}
