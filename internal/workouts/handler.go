package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/workoutweek/internal/instrumentation"
	"github.com/2beens/workoutweek/internal/telemetry/tracing"
	"github.com/2beens/workoutweek/internal/weekdates"
	"github.com/2beens/workoutweek/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	GetWeekView(ctx context.Context, mode WeekMode) (*WeekView, error)
	Toggle(ctx context.Context, date, message string) (*Workout, error)
	SaveMessage(ctx context.Context, date, message string) (*Workout, error)
}

type ToggleRequest struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

type SaveMessageRequest struct {
	Date    string  `json:"date"`
	Message *string `json:"message"`
}

type Handler struct {
	service workoutsService
	instr   *instrumentation.Instrumentation
}

func NewHandler(service workoutsService, instr *instrumentation.Instrumentation) *Handler {
	return &Handler{
		service: service,
		instr:   instr,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleGetWeek).Methods("GET", "OPTIONS").Name("get-week")
	r.HandleFunc("/toggle_workout", handler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-workout")
	r.HandleFunc("/save_message", handler.HandleSaveMessage).Methods("POST", "OPTIONS").Name("save-message")
}

// HandleGetWeek returns the week view for the current week, or, with the
// legacy ?week=YYYY-WW param, for that explicitly requested week.
func (handler *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getweek")
	defer span.End()

	mode := CurrentWeek()
	if weekParam := r.URL.Query().Get("week"); weekParam != "" {
		year, week, err := weekdates.ParseWeekKey(weekParam)
		if err != nil {
			log.Tracef("get workouts, bad week param [%s]: %s", weekParam, err)
			pkg.WriteJSONError(w, "invalid week parameter", http.StatusBadRequest)
			return
		}
		mode = ExplicitWeek(year, week)
	}

	view, err := handler.service.GetWeekView(ctx, mode)
	if err != nil {
		log.Errorf("get week view: %s", err)
		writeServiceError(w, err)
		return
	}

	viewJson, err := json.Marshal(view)
	if err != nil {
		log.Errorf("failed to marshal week view: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, viewJson)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.toggle")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("toggle workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		pkg.WriteJSONError(w, "error, date empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Toggle(ctx, req.Date, req.Message)
	if err != nil {
		log.Errorf("toggle workout [%s]: %s", req.Date, err)
		writeServiceError(w, err)
		return
	}

	handler.instr.CounterWorkoutToggles.Inc()

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal toggled workout: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout toggled: [%s] completed=%t", workout.Date, workout.Completed)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

func (handler *Handler) HandleSaveMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.savemessage")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save message, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		pkg.WriteJSONError(w, "error, date empty", http.StatusBadRequest)
		return
	}
	if req.Message == nil {
		pkg.WriteJSONError(w, "error, message missing", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.SaveMessage(ctx, req.Date, *req.Message)
	if err != nil {
		log.Errorf("save message [%s]: %s", req.Date, err)
		writeServiceError(w, err)
		return
	}

	handler.instr.CounterMessagesSaved.Inc()

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, weekdates.ErrInvalidDate), errors.Is(err, weekdates.ErrInvalidWeek):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrStorageUnavailable):
		pkg.WriteJSONError(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
