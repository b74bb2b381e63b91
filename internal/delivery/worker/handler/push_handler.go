// Package handler processes Pub/Sub push messages carrying batch evaluation
// commands.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Batch command scopes accepted on the push endpoint.
const (
	ScopeAll      = "all"
	ScopeInterest = "interest"
)

// BatchCommand is the payload the scheduler publishes to kick off a batch
// evaluation run.
type BatchCommand struct {
	Scope     string `json:"scope"`
	Interest  string `json:"interest,omitempty"` // Required when scope is "interest".
	RequestID string `json:"request_id,omitempty"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying batch commands
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	batch          usecase.BatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Batch  usecase.BatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		batch:          params.Batch,
	}
}

// HandlePush processes a Pub/Sub push request. Malformed messages are
// acknowledged with 2xx so Pub/Sub stops redelivering them; only transient
// downstream failures return 503 to request a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse batch command
	var cmd BatchCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		h.logger.Error("[Worker] Failed to parse batch command", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > command field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &cmd)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.process(ctx, reqLogger, &cmd); err != nil {
		if isRetryableError(err) {
			reqLogger.Error("[Worker] Batch run failed, requesting redelivery",
				slog.String("scope", cmd.Scope),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusServiceUnavailable)
		}

		// Acknowledge permanent failures; redelivery cannot fix them.
		reqLogger.Error("[Worker] Batch command rejected",
			slog.String("scope", cmd.Scope),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// process dispatches the batch command to the matching evaluation run.
func (h *PushHandler) process(ctx context.Context, logger *slog.Logger, cmd *BatchCommand) error {
	var (
		summary *usecase.BatchSummary
		err     error
	)

	switch cmd.Scope {
	case ScopeAll:
		summary, err = h.batch.EvaluateAllUsers(ctx)
	case ScopeInterest:
		interest := entity.InterestCategory(cmd.Interest)
		if !validInterest(interest) {
			return errors.Errorf("unknown interest category: %q", cmd.Interest)
		}
		summary, err = h.batch.EvaluateUsersByInterest(ctx, interest)
	default:
		return errors.Errorf("unknown batch scope: %q", cmd.Scope)
	}

	if err != nil {
		// Loading the user population failed; the run itself never got going,
		// so redelivery is safe.
		return newRetryableError(errors.WithStack(err))
	}

	logger.Info("[Worker] Batch evaluation completed",
		slog.String("scope", cmd.Scope),
		slog.String("interest", cmd.Interest),
		slog.Int("users_evaluated", summary.UsersEvaluated),
		slog.Int("users_failed", summary.UsersFailed),
		slog.Int("triggers_delivered", summary.TriggersDelivered),
		slog.Duration("duration", summary.Duration),
	)

	return nil
}

// extractRequestID resolves the request ID for tracing across the publish hop.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, cmd *BatchCommand) string {
	if id, ok := pushMsg.Message.Attributes["request_id"]; ok && id != "" {
		return id
	}
	if cmd.RequestID != "" {
		return cmd.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.New().String()
}

func validInterest(interest entity.InterestCategory) bool {
	switch interest {
	case entity.InterestWeather, entity.InterestBike, entity.InterestCongestion, entity.InterestCulture:
		return true
	default:
		return false
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
