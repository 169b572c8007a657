package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutweek/internal/telemetry/tracing"
	"github.com/2beens/workoutweek/internal/weekdates"

	"go.opentelemetry.io/otel/attribute"
)

// storeTimeout bounds every single store operation, so a dead database
// surfaces as ErrStorageUnavailable instead of a hung request.
const storeTimeout = 5 * time.Second

type workoutsRepo interface {
	GetMany(ctx context.Context, dates []string) (map[string]Workout, error)
	Toggle(ctx context.Context, date, message string) (*Workout, error)
	SaveMessage(ctx context.Context, date, message string) (*Workout, error)
}

var _ workoutsRepo = (*Repo)(nil)
var _ workoutsRepo = (*TestRepo)(nil)

// WeekMode selects which week GetWeekView resolves: the week containing
// "now", or an explicitly requested (year, week) pair.
type WeekMode struct {
	explicit bool
	year     int
	week     int
}

func CurrentWeek() WeekMode {
	return WeekMode{}
}

func ExplicitWeek(year, week int) WeekMode {
	return WeekMode{
		explicit: true,
		year:     year,
		week:     week,
	}
}

type Service struct {
	repo workoutsRepo
	now  func() time.Time
}

func NewService(repo workoutsRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// GetWeekView resolves the 7 dates of the target week, batch-fetches the
// stored records and default-fills the dates without one. The dates slice
// is always ordered Monday through Sunday.
func (s *Service) GetWeekView(ctx context.Context, mode WeekMode) (_ *WeekView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.weekview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("explicit", mode.explicit))

	var dates []string
	if mode.explicit {
		dates, err = weekdates.ExplicitWeekDates(mode.year, mode.week)
		if err != nil {
			return nil, err
		}
	} else {
		dates = weekdates.CurrentWeekDates(s.now())
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	stored, err := s.repo.GetMany(ctx, dates)
	if err != nil {
		return nil, storeErr("get workouts", err)
	}

	view := &WeekView{
		Dates:    dates,
		Workouts: make(map[string]Workout, len(dates)),
	}
	for _, date := range dates {
		if w, ok := stored[date]; ok {
			view.Workouts[date] = w
		} else {
			view.Workouts[date] = Workout{Date: date}
		}
	}

	return view, nil
}

// Toggle validates the date and flips (or creates) its completion record.
func (s *Service) Toggle(ctx context.Context, date, message string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	if _, err := weekdates.ParseDate(date); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	workout, err := s.repo.Toggle(ctx, date, message)
	if err != nil {
		return nil, storeErr("toggle workout", err)
	}
	return workout, nil
}

// SaveMessage validates the date and stores the message for it, leaving the
// completion flag as is.
func (s *Service) SaveMessage(ctx context.Context, date, message string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.savemessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	if _, err := weekdates.ParseDate(date); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	workout, err := s.repo.SaveMessage(ctx, date, message)
	if err != nil {
		return nil, storeErr("save message", err)
	}
	return workout, nil
}

func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
