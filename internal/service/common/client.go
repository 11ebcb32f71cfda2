//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	apiv1 "github.com/oshokin/alarm-clock/internal/api/v1"
	"github.com/oshokin/alarm-clock/internal/config"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm daemon.
	conn *grpc.ClientConn
	// api is the AlarmService client interface.
	api apiv1.AlarmServiceClient
	// health is the standard gRPC health client.
	health healthpb.HealthClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errRequestRequired is returned for nil requests.
	errRequestRequired = errors.New("request must be provided")
	// errNotServing is returned by Health when the daemon reports anything but SERVING.
	errNotServing = errors.New("alarm daemon is not serving")
)

// Dial establishes a gRPC connection to the alarm daemon.
// Note: this uses insecure transport credentials; the daemon listens on
// loopback by default.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial alarm daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         apiv1.NewAlarmServiceClient(conn),
		health:      healthpb.NewHealthClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Arm sets the alarm. The request must carry an actor.
func (c *Client) Arm(ctx context.Context, request *apiv1.ArmRequest) (*apiv1.AlarmStatusResponse, error) {
	if request == nil {
		return nil, errRequestRequired
	}

	if request.GetActor() == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Arm(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("arm alarm: %w", err)
	}

	return response, nil
}

// Cancel cancels the armed alarm.
func (c *Client) Cancel(ctx context.Context, actor *apiv1.SystemActor) (*apiv1.AlarmStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Cancel(callCtx, &apiv1.CancelRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("cancel alarm: %w", err)
	}

	return response, nil
}

// GetStatus retrieves the current alarm status.
func (c *Client) GetStatus(ctx context.Context) (*apiv1.AlarmStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetStatus(callCtx, new(apiv1.GetStatusRequest))
	if err != nil {
		return nil, fmt.Errorf("get alarm status: %w", err)
	}

	return response, nil
}

// Health asks the daemon's health service whether AlarmService is serving.
func (c *Client) Health(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.health.Check(callCtx, &healthpb.HealthCheckRequest{Service: apiv1.ServiceName})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	if response.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%s: %w", response.GetStatus(), errNotServing)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
