// Command server builds the syllable tree for the configured document
// and exposes it, together with the analyzer, over a JSON REST API.
//
// Endpoints:
//
//	GET /api/segment?word=молоко
//	GET /api/resolve?word=стекло&context=медленно,по
//	GET /api/search?syllables=мо-ло-ко
//	GET /api/prefix?syllables=мо
//	GET /api/stats
//	GET /api/tree
//	GET /api/healthz
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/cors"

	"github.com/ruslingua/morphotrie"
	"github.com/ruslingua/morphotrie/internal/app"
	"github.com/ruslingua/morphotrie/internal/config"
)

// ---- responses ----

type segmentResponse struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	Count     int      `json:"count"`
}

type resolveResponse struct {
	Word   string            `json:"word"`
	Record morphotrie.Record `json:"record"`
}

type searchResponse struct {
	Syllables []string            `json:"syllables"`
	Found     bool                `json:"found"`
	Records   []morphotrie.Record `json:"records,omitempty"`
}

type prefixResponse struct {
	Prefix []string               `json:"prefix"`
	Total  int                    `json:"total"`
	Words  []morphotrie.WordEntry `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// splitSyllables parses the hyphen-separated syllables query parameter.
// An empty parameter means the empty sequence.
func splitSyllables(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "-")
}

// splitContext parses the comma-separated context query parameter.
func splitContext(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ---- handlers ----

func handleSegment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "use GET")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing word parameter")
			return
		}
		syllables := morphotrie.Segment(word)
		writeJSON(w, http.StatusOK, segmentResponse{
			Word:      morphotrie.Clean(word),
			Syllables: syllables,
			Count:     len(syllables),
		})
	}
}

func handleResolve(a *morphotrie.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "use GET")
			return
		}
		q := r.URL.Query()
		word := q.Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing word parameter")
			return
		}
		record := a.Resolve(word, splitContext(q.Get("context")))
		if len(record) == 0 {
			writeError(w, http.StatusBadRequest, "word has no Russian letters")
			return
		}
		writeJSON(w, http.StatusOK, resolveResponse{
			Word:   morphotrie.Clean(word),
			Record: record,
		})
	}
}

func handleSearch(tree *morphotrie.PrefixTree) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "use GET")
			return
		}
		syllables := splitSyllables(r.URL.Query().Get("syllables"))
		records, found := tree.Search(syllables)
		writeJSON(w, http.StatusOK, searchResponse{
			Syllables: syllables,
			Found:     found,
			Records:   records,
		})
	}
}

func handlePrefix(tree *morphotrie.PrefixTree) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "use GET")
			return
		}
		prefix := splitSyllables(r.URL.Query().Get("syllables"))
		words := tree.PrefixQuery(prefix)
		writeJSON(w, http.StatusOK, prefixResponse{
			Prefix: prefix,
			Total:  len(words),
			Words:  words,
		})
	}
}

func handleStats(tree *morphotrie.PrefixTree) http.HandlerFunc {
	stats := tree.Statistics()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "use GET")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func handleTree(tree *morphotrie.PrefixTree) http.HandlerFunc {
	data := tree.Serialize()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "use GET")
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ---- main ----

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log)

	analyzer, err := morphotrie.New(cfg.Data.Dictionary, cfg.Data.Lexicon,
		morphotrie.WithLogger(log),
		morphotrie.WithWorkers(cfg.Analyze.Workers),
		morphotrie.WithContextWindow(cfg.Analyze.ContextWindow),
		morphotrie.WithMaxWords(cfg.Analyze.MaxWords),
	)
	if err != nil {
		log.Error("build analyzer", "err", err)
		os.Exit(1)
	}

	// The tree is built once before serving and read-only afterwards.
	tree := morphotrie.NewPrefixTree()
	if cfg.Input.Path != "" {
		res, err := analyzer.AnalyzeFile(cfg.Input.Path)
		if err != nil {
			log.Error("analyze input", "path", cfg.Input.Path, "err", err)
			os.Exit(1)
		}
		tree = res.Tree
		log.Info("tree built", "input", cfg.Input.Path, "words", tree.WordCount())
	} else {
		log.Warn("no input.path configured, serving an empty tree")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/segment", handleSegment())
	mux.HandleFunc("/api/resolve", handleResolve(analyzer))
	mux.HandleFunc("/api/search", handleSearch(tree))
	mux.HandleFunc("/api/prefix", handlePrefix(tree))
	mux.HandleFunc("/api/stats", handleStats(tree))
	mux.HandleFunc("/api/tree", handleTree(tree))
	mux.HandleFunc("/api/healthz", handleHealth())

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: corsMiddleware.Handler(mux),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
