package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/session"
	"github.com/jsphweid/fifths/theory"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sessions *session.Store

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the circle of fifths api",
	Long:  `Serves the theory queries, interactive sessions and the svg diagram over http.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func LoadServeState() {
	settle := time.Duration(constants.GetHoverSettleMillis()) * time.Millisecond
	sessions = session.NewStore(settle)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, session.ErrUnknownSession) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// keyFromQuery reads a key and an optional mode. Without a mode the key is
// parsed like cli input, so "Am" is minor.
func keyFromQuery(r *http.Request, keyParam string, modeParam string) (model.Key, error) {
	q := r.URL.Query()
	if q.Get(modeParam) == "" {
		return theory.ParseKey(q.Get(keyParam))
	}
	return theory.ParseKeyMode(q.Get(keyParam), q.Get(modeParam))
}

func HandleKeys(w http.ResponseWriter, r *http.Request) {
	major, minor := theory.Table(model.Major), theory.Table(model.Minor)
	writeJSON(w, http.StatusOK, model.KeysResponse{Major: major[:], Minor: minor[:]})
}

func theoryReport(k model.Key) (model.TheoryResponse, error) {
	res := model.TheoryResponse{Key: k}
	var err error
	if res.Dominant, err = theory.Dominant(k); err != nil {
		return res, err
	}
	if res.Subdominant, err = theory.Subdominant(k); err != nil {
		return res, err
	}
	if res.Relative, err = theory.Relative(k); err != nil {
		return res, err
	}
	if res.Neighborhood, err = theory.CircleNeighborhood(k); err != nil {
		return res, err
	}
	if res.Scale, err = theory.DiatonicScale(k); err != nil {
		return res, err
	}
	res.Coltrane, err = theory.ColtraneCycle(k)
	return res, err
}

func HandleTheory(w http.ResponseWriter, r *http.Request) {
	k, err := keyFromQuery(r, "key", "mode")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := theoryReport(k)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleClassify(w http.ResponseWriter, r *http.Request) {
	note, err := keyFromQuery(r, "key", "mode")
	if err != nil {
		writeError(w, err)
		return
	}
	reference, err := keyFromQuery(r, "tonic", "tonicMode")
	if err != nil {
		writeError(w, err)
		return
	}
	visual := model.VisualFunctional
	if v := r.URL.Query().Get("visual"); v != "" {
		if visual, err = model.ParseVisualMode(v); err != nil {
			writeError(w, err)
			return
		}
	}

	tag, err := theory.Classify(note, reference, visual)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ClassifyResponse{Key: note, Reference: reference, Visual: visual, Tag: tag})
}

func HandleScaleMidi(w http.ResponseWriter, r *http.Request) {
	k, err := keyFromQuery(r, "key", "mode")
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", `attachment; filename="scale.mid"`)
	if err := midi.WriteScale(w, k, midi.DefaultOptions()); err != nil {
		logger.Error("could not write midi", zap.Error(err), zap.Stringer("key", k))
	}
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := sessions.Create()
	logger.Debug("session created", zap.String("session", id))
	writeJSON(w, http.StatusCreated, model.SessionResponse{Id: id})
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	s, err := sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessions.Delete(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func HandleSessionEvent(w http.ResponseWriter, r *http.Request) {
	var evt model.SessionEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		writeError(w, err)
		return
	}
	s, err := sessions.Apply(mux.Vars(r)["id"], evt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func sessionView(w http.ResponseWriter, r *http.Request) (diagram.View, bool) {
	s, err := sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return diagram.View{}, false
	}
	v, err := diagram.Build(s)
	if err != nil {
		writeError(w, err)
		return diagram.View{}, false
	}
	return v, true
}

func HandleSessionView(w http.ResponseWriter, r *http.Request) {
	if v, ok := sessionView(w, r); ok {
		writeJSON(w, http.StatusOK, v)
	}
}

func HandleSessionDiagram(w http.ResponseWriter, r *http.Request) {
	v, ok := sessionView(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.WriteSVG(w, v); err != nil {
		logger.Error("could not render diagram", zap.Error(err))
	}
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/keys", HandleKeys).Methods("GET")
	router.HandleFunc("/theory", HandleTheory).Methods("GET")
	router.HandleFunc("/classify", HandleClassify).Methods("GET")
	router.HandleFunc("/scale.mid", HandleScaleMidi).Methods("GET")
	router.HandleFunc("/sessions", HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", HandleGetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", HandleDeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/events", HandleSessionEvent).Methods("POST")
	router.HandleFunc("/sessions/{id}/view", HandleSessionView).Methods("GET")
	router.HandleFunc("/sessions/{id}/diagram.svg", HandleSessionDiagram).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func serve() error {
	LoadServeState()

	server := &http.Server{
		Addr:         ":" + constants.GetPort(),
		Handler:      NewRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", server.Addr))
		errs <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errs:
		return err
	case <-stop:
	}

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
