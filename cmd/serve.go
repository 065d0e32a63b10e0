package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/attendance-cli/internal/dataset"
	"github.com/sells-group/attendance-cli/internal/model"
	"github.com/sells-group/attendance-cli/internal/recommend"
	"github.com/sells-group/attendance-cli/internal/risk"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analytics core as a JSON API for dashboard frontends",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		path := filePath
		if path == "" {
			path = cfg.Input.Path
		}

		proc := dataset.NewProcessor(dataset.Options{
			SheetIndex: cfg.Input.SheetIndex,
			SheetName:  cfg.Input.SheetName,
		})
		if _, err := proc.Reload(path); err != nil {
			return err
		}

		api := &apiServer{
			proc:     proc,
			path:     path,
			analyzer: risk.NewAnalyzer(),
			engine:   recommend.NewEngine(),
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: api.router(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// apiServer exposes the collaborator boundary: load/reload, lookup, filter,
// aggregate stats, risk assessment, recommendations. JSON only; rendering
// belongs to the caller.
type apiServer struct {
	proc     *dataset.Processor
	path     string
	analyzer *risk.Analyzer
	engine   *recommend.Engine
}

func (s *apiServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/reload", s.handleReload)
	r.Get("/employees", s.handleEmployees)
	r.Get("/employees/{id}/report", s.handleReport)
	r.Get("/stats/company", s.handleCompanyStats)
	r.Get("/stats/accounts", s.handleAllAccountStats)
	r.Get("/stats/accounts/{code}", s.handleAccountStats)

	return r
}

func (s *apiServer) snapshot(w http.ResponseWriter) (*dataset.Snapshot, bool) {
	snap, ok := s.proc.Current()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no data loaded")
		return nil, false
	}
	return snap, true
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *apiServer) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.proc.Reload(s.path)
	if err != nil {
		zap.L().Error("reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, eris.ToString(err, false))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot_id": snap.ID,
		"hash":        snap.Hash,
		"records":     snap.Len(),
	})
}

func (s *apiServer) handleEmployees(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	records := snap.Filter(r.URL.Query().Get("account"), r.URL.Query().Get("designation"))
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(records),
		"records": records,
	})
}

func (s *apiServer) handleReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "employee id must be numeric")
		return
	}

	rec, found := snap.Employee(id)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no employee with id %d", id))
		return
	}

	stats := snap.CompanyStats()
	assessment := s.analyzer.Score(rec, stats)
	recs := s.engine.Recommend(rec, assessment.Total, assessment.Reasons, stats, snap.AccountStats(rec.AccountCode))

	writeJSON(w, http.StatusOK, map[string]any{
		"employee":        rec,
		"assessment":      assessment,
		"recommendations": recs,
		"account_stats":   snap.AccountStats(rec.AccountCode),
	})
}

func (s *apiServer) handleCompanyStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.CompanyStats())
}

func (s *apiServer) handleAccountStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	code := chi.URLParam(r, "code")
	stats := snap.AccountStats(code)
	if stats.EmployeeCount == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no records for account %s", code))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *apiServer) handleAllAccountStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	codes := snap.Accounts()
	out := make([]model.AccountStats, 0, len(codes))
	for _, code := range codes {
		out = append(out, snap.AccountStats(code))
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
