package alarm

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/oshokin/alarm-clock/internal/api/v1"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Arm(ctx context.Context, cmd domain.ArmCommand) (domain.Snapshot, error)
	Cancel(ctx context.Context, actor *domain.Actor) (domain.Snapshot, error)
	Status(ctx context.Context) domain.Snapshot
}

// Server implements the AlarmService gRPC API.
type Server struct {
	apiv1.UnimplementedAlarmServiceServer

	// service provides the business logic for alarm operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Arm validates the request shape and arms the alarm.
func (s *Server) Arm(ctx context.Context, req *apiv1.ArmRequest) (*apiv1.AlarmStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	if req.GetPauseFor() != nil && req.GetPauseUntil() != nil {
		return nil, status.Error(codes.InvalidArgument, "pause_for and pause_until are mutually exclusive")
	}

	snapshot, err := s.service.Arm(ctx, toDomainCommand(req))
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoStatus(snapshot), nil
}

// Cancel cancels the armed alarm.
func (s *Server) Cancel(ctx context.Context, req *apiv1.CancelRequest) (*apiv1.AlarmStatusResponse, error) {
	snapshot, err := s.service.Cancel(ctx, toDomainActor(req.GetActor()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoStatus(snapshot), nil
}

// GetStatus returns the current alarm status.
func (s *Server) GetStatus(ctx context.Context, _ *apiv1.GetStatusRequest) (*apiv1.AlarmStatusResponse, error) {
	return toProtoStatus(s.service.Status(ctx)), nil
}

// toStatusError maps domain errors to gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTarget), errors.Is(err, domain.ErrInvalidPause):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotArmed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, "unable to process alarm request")
	}
}

// toDomainCommand converts the wire request into an unvalidated arm command.
func toDomainCommand(req *apiv1.ArmRequest) domain.ArmCommand {
	cmd := domain.ArmCommand{
		Hour:   toIntPtr(req.GetHour()),
		Minute: toIntPtr(req.GetMinute()),
		Pause:  domain.NoPause(),
		Anchor: req.GetPauseAnchor(),
		Actor:  toDomainActor(req.GetActor()),
	}

	switch {
	case req.GetPauseFor() != nil:
		cmd.Pause = domain.PauseFor(int(req.GetPauseFor().GetHours()), int(req.GetPauseFor().GetMinutes()))
	case req.GetPauseUntil() != nil:
		cmd.Pause = domain.PauseUntil(int(req.GetPauseUntil().GetHour()), int(req.GetPauseUntil().GetMinute()))
	}

	return cmd
}

// toDomainActor converts a wire SystemActor to a domain Actor.
func toDomainActor(actor *apiv1.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoStatus converts a domain snapshot into the wire response.
func toProtoStatus(snapshot domain.Snapshot) *apiv1.AlarmStatusResponse {
	session := snapshot.Session

	response := &apiv1.AlarmStatusResponse{
		State:     session.State.String(),
		ArmID:     session.ArmID,
		LastArmID: session.LastArmID,
	}

	if session.LastOutcome != domain.OutcomeNone {
		response.LastOutcome = session.LastOutcome.String()
	}

	if !session.Active() {
		return response
	}

	response.Target = &apiv1.ClockTime{
		Hour:   int32(session.Target.Hour),   //nolint:gosec // Validated to [0,23].
		Minute: int32(session.Target.Minute), //nolint:gosec // Validated to [0,59].
	}
	response.PauseAnchor = session.Anchor.String()
	response.Deferred = session.Deferred
	response.ArmedAt = timePtr(snapshot.ArmedAt)
	response.NextFire = timePtr(snapshot.NextFire)

	switch session.Pause.Kind {
	case domain.PauseDuration:
		response.PauseFor = &apiv1.PauseDuration{
			Hours:   int32(session.Pause.Duration.Hours),   //nolint:gosec // Validated below 24.
			Minutes: int32(session.Pause.Duration.Minutes), //nolint:gosec // Validated to [0,59].
		}
	case domain.PauseAbsoluteEnd:
		response.PauseUntil = &apiv1.ClockTime{
			Hour:   int32(session.Pause.End.Hour),   //nolint:gosec // Validated to [0,23].
			Minute: int32(session.Pause.End.Minute), //nolint:gosec // Validated to [0,59].
		}
	case domain.PauseNone:
	}

	if session.Actor != nil {
		response.Actor = &apiv1.SystemActor{
			Hostname: session.Actor.Hostname,
			Username: session.Actor.Username,
		}
	}

	return response
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}

	i := int(*v)

	return &i
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
