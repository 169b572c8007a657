package prizes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/workoutweek/internal/instrumentation"
	"github.com/2beens/workoutweek/internal/telemetry/tracing"
	"github.com/2beens/workoutweek/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	catalog *Catalog
	instr   *instrumentation.Instrumentation
	now     func() time.Time
}

func NewHandler(catalog *Catalog, instr *instrumentation.Instrumentation) *Handler {
	return &Handler{
		catalog: catalog,
		instr:   instr,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/prize", handler.HandleGetCurrent).Methods("GET", "OPTIONS").Name("get-prize")
	r.HandleFunc("/prizes", handler.HandleList).Methods("GET", "OPTIONS").Name("list-prizes")
}

// HandleGetCurrent returns this week's prize, or 404 when no prize is
// registered for the current ISO week.
func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.prizes.current")
	defer span.End()

	prize, err := handler.catalog.Lookup(handler.now())
	if errors.Is(err, ErrPrizeNotFound) {
		handler.instr.CounterPrizeLookups.WithLabelValues("false").Inc()
		pkg.WriteJSONError(w, "no prize for this week", http.StatusNotFound)
		return
	}

	handler.instr.CounterPrizeLookups.WithLabelValues("true").Inc()

	prizeJson, err := json.Marshal(prize)
	if err != nil {
		log.Errorf("failed to marshal prize: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, prizeJson)
}

// HandleList dumps the whole catalog, keyed by year-week.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.prizes.list")
	defer span.End()

	allJson, err := json.Marshal(handler.catalog.All())
	if err != nil {
		log.Errorf("failed to marshal prizes: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, allJson)
}
