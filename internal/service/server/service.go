package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/alarm-clock/internal/audio"
	"github.com/oshokin/alarm-clock/internal/clock"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notify"
	"github.com/oshokin/alarm-clock/internal/repository/history"
	"github.com/oshokin/alarm-clock/internal/scheduler"
)

const (
	// armedTitle and firedTitle head the notifications.
	armedTitle = "⏰ Alarm set!"
	firedTitle = "🔔 Alarm clock!"
)

// dependencies are the collaborators of the alarm service.
type dependencies struct {
	// clock supplies wall-clock readings.
	clock clock.Source
	// notifier receives the arm confirmation and the fire notification.
	notifier notify.Notifier
	// tone plays the alarm sound.
	tone audio.Player
	// history records finished arm cycles; nil disables it.
	history history.Repository
	// anchor is used when a request does not name one.
	anchor domain.PauseAnchor
	// interval overrides the tick cadence in tests.
	interval time.Duration
	// newID generates arm-cycle IDs.
	newID func() string
}

// service owns the single alarm session. Arm, Cancel and ticks are serialised
// by one mutex, and side effects run outside it.
type service struct {
	deps dependencies
	// ctx is the daemon lifetime context; ticks and side effects run under it.
	ctx context.Context
	// loop invokes tick once per second while the session is active.
	loop *scheduler.Loop
	// dispatches tracks side-effect goroutines.
	dispatches sync.WaitGroup

	// mu protects session and armedAt.
	mu sync.Mutex
	// session is the current alarm lifecycle value.
	session domain.Session
	// armedAt is the wall-clock time of the current arm cycle.
	armedAt time.Time
}

// newService creates an idle alarm service bound to the daemon context.
func newService(ctx context.Context, deps dependencies) *service {
	if deps.clock == nil {
		deps.clock = clock.System{}
	}

	if deps.notifier == nil {
		deps.notifier = notify.Nop{}
	}

	if deps.newID == nil {
		deps.newID = uuid.NewString
	}

	s := &service{
		deps: deps,
		ctx:  logger.WithName(ctx, "alarm"),
	}

	var options []scheduler.Option
	if deps.interval > 0 {
		options = append(options, scheduler.WithInterval(deps.interval))
	}

	s.loop = scheduler.New(s.tick, options...)

	return s
}

// Arm validates the command and starts a new arm cycle, replacing any active one.
// The first reading is evaluated immediately; later ones come from the scheduler.
func (s *service) Arm(ctx context.Context, cmd domain.ArmCommand) (domain.Snapshot, error) {
	target, err := domain.NewTarget(cmd.Hour, cmd.Minute)
	if err != nil {
		return domain.Snapshot{}, err
	}

	anchor := s.deps.anchor
	if cmd.Anchor != "" {
		if anchor, err = domain.ParsePauseAnchor(cmd.Anchor); err != nil {
			return domain.Snapshot{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.clock.Now()
	request := domain.ArmRequest{
		ID:     s.deps.newID(),
		Target: target,
		Pause:  cmd.Pause,
		Anchor: anchor,
		Actor:  cmd.Actor,
	}

	next, step, err := s.session.Arm(request, domain.ReadingOf(now))
	if err != nil {
		logger.WarnKV(ctx, "Arm rejected", "error", err, "actor", cmd.Actor)

		return domain.Snapshot{}, err
	}

	if s.session.Active() {
		logger.InfoKV(ctx, "Replacing armed alarm", "arm_id", s.session.ArmID, "target", s.session.Target)
	}

	s.session = next
	s.armedAt = now
	s.logStep(ctx, step)

	logger.InfoKV(ctx, "Alarm armed",
		"arm_id", request.ID,
		"target", target,
		"pause", cmd.Pause,
		"anchor", anchor,
		"actor", cmd.Actor,
	)

	// Arming on the target second fires right away and only the fire notification is sent.
	if !s.tickLocked() {
		s.loop.Stop()

		return s.snapshotLocked(now), nil
	}

	s.loop.Start(s.ctx)

	s.dispatch(request.ID, func(ctx context.Context) {
		body := "Your alarm is set for: " + target.String()
		if err := s.deps.notifier.Notify(ctx, armedTitle, body); err != nil {
			logger.WarnKV(ctx, "Arm notification failed", "error", err)
		}
	})

	return s.snapshotLocked(now), nil
}

// Cancel ends the active arm cycle and stops the scheduler.
func (s *service) Cancel(ctx context.Context, actor *domain.Actor) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.clock.Now()
	armed := s.session

	next, step, err := s.session.Cancel(domain.ReadingOf(now))
	if err != nil {
		return s.snapshotLocked(now), err
	}

	s.loop.Stop()
	s.session = next
	s.logStep(ctx, step)

	logger.InfoKV(ctx, "Alarm cancelled", "arm_id", armed.ArmID, "actor", actor)

	record := history.NewRecord(next, armed, armed.Deferred, now)
	s.dispatch(armed.ArmID, func(ctx context.Context) {
		s.record(ctx, record)
	})

	return s.snapshotLocked(now), nil
}

// Status returns a snapshot of the session.
func (s *service) Status(ctx context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshotLocked(s.deps.clock.Now())

	logger.DebugKV(ctx, "Alarm status requested", "state", snapshot.Session.State)

	return snapshot
}

// Close stops the scheduler and waits for pending side effects.
func (s *service) Close() {
	s.loop.Stop()
	s.loop.Wait()
	s.dispatches.Wait()

	if s.deps.tone != nil {
		s.deps.tone.StopAlarmTone()
	}
}

// tick is the scheduler callback. A callback of a stopped or replaced
// schedule sees its context cancelled and evaluates nothing.
func (s *service) tick(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}

	return s.tickLocked()
}

// tickLocked evaluates the current reading and reports whether the session is still active.
func (s *service) tickLocked() bool {
	now := s.deps.clock.Now()
	armed := s.session

	next, step := s.session.Tick(domain.ReadingOf(now))
	s.session = next

	if len(step.Transitions) > 0 {
		s.logStep(s.ctx, step)
	}

	if step.Fire != nil {
		s.fire(armed, next, *step.Fire, now)
	}

	return s.session.Active()
}

// fire dispatches the side effects of the Firing transition.
func (s *service) fire(armed, ended domain.Session, event domain.FireEvent, now time.Time) {
	logger.InfoKV(s.ctx, "Alarm fired",
		"arm_id", event.ArmID,
		"target", event.Target,
		"at", event.At,
		"deferred", event.Deferred,
	)

	record := history.NewRecord(ended, armed, event.Deferred, now)

	s.dispatch(event.ArmID, func(ctx context.Context) {
		if s.deps.tone != nil {
			if err := s.deps.tone.PlayAlarmTone(ctx); err != nil {
				logger.WarnKV(ctx, "Audio sink failed", "error", err)
			}
		}

		body := "The time you set has arrived: " + event.Target.String()
		if err := s.deps.notifier.Notify(ctx, firedTitle, body); err != nil {
			logger.WarnKV(ctx, "Fire notification failed", "error", err)
		}

		s.record(ctx, record)
	})
}

// dispatch runs fn in the background under the daemon context.
func (s *service) dispatch(armID string, fn func(ctx context.Context)) {
	ctx := logger.WithKV(s.ctx, "arm_id", armID)

	s.dispatches.Add(1)

	go func() {
		defer s.dispatches.Done()

		fn(ctx)
	}()
}

func (s *service) record(ctx context.Context, record history.Record) {
	if s.deps.history == nil {
		return
	}

	if err := s.deps.history.Append(ctx, record); err != nil {
		logger.ErrorKV(ctx, "Failed to record alarm outcome", "error", err)
	}
}

func (s *service) logStep(ctx context.Context, step domain.Step) {
	for _, transition := range step.Transitions {
		logger.DebugKV(ctx, "Alarm state changed",
			"from", transition.From,
			"to", transition.To,
			"at", transition.At,
		)
	}
}

func (s *service) snapshotLocked(now time.Time) domain.Snapshot {
	snapshot := domain.Snapshot{
		Session: s.session.Clone(),
	}

	if next, ok := s.session.NextFire(now); ok {
		snapshot.ArmedAt = s.armedAt
		snapshot.NextFire = next
	}

	return snapshot
}

