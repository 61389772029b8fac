// Package server exposes the analytics and mining results over a thin HTTP
// API. It is presentation only; every handler reads precomputed state or
// runs a pure analytics pass over the current graph snapshot.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/minseolee/cryptolens/pkg/analytics"
	"github.com/minseolee/cryptolens/pkg/graph"
	"github.com/minseolee/cryptolens/pkg/sentiment"
	"github.com/minseolee/cryptolens/pkg/topics"
)

// Server provides the HTTP API.
type Server struct {
	mu       sync.RWMutex
	graph    graph.Graph
	analyzer *sentiment.Analyzer
	detector *topics.Detector
	log      logrus.FieldLogger
	port     int
}

// New creates a new HTTP server serving the given graph snapshot.
func New(g graph.Graph, analyzer *sentiment.Analyzer, detector *topics.Detector, log logrus.FieldLogger, port int) *Server {
	if port == 0 {
		port = 8080
	}
	return &Server{
		graph:    g,
		analyzer: analyzer,
		detector: detector,
		log:      log,
		port:     port,
	}
}

// SetGraph swaps the served graph snapshot. Called by the scheduler after
// each crawl pass.
func (s *Server) SetGraph(g graph.Graph) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
}

func (s *Server) snapshot() graph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/graph", s.handleGraph)
	mux.HandleFunc("/api/v1/influencers", s.handleInfluencers)
	mux.HandleFunc("/api/v1/communities", s.handleCommunities)
	mux.HandleFunc("/api/v1/recommendations", s.handleRecommendations)
	mux.HandleFunc("/api/v1/sentiment", s.handleSentiment)
	mux.HandleFunc("/api/v1/topics/emerging", s.handleEmergingTopics)
	mux.HandleFunc("/api/v1/topics/timeline", s.handleTopicTimeline)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.WithField("addr", addr).Info("server listening")
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	g := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes": g.Nodes,
		"links": g.Links,
	})
}

func (s *Server) handleInfluencers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	metric := analytics.Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = analytics.MetricFollowers
	}
	limit := queryInt(r, "limit", 10)

	top := analytics.TopInfluencers(s.snapshot(), metric, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"metric": metric,
		"data":   top,
		"count":  len(top),
	})
}

func (s *Server) handleCommunities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	result := analytics.DetectCommunities(s.snapshot())
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	user := r.URL.Query().Get("user")
	if user == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user parameter required"})
		return
	}
	limit := queryInt(r, "limit", 5)

	recs := analytics.RecommendConnections(s.snapshot(), user, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"data":  recs,
		"count": len(recs),
	})
}

// handleSentiment scores the most recent window's tweets and returns the
// aggregate summary plus key lexicon terms.
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	tweets, windowKey, err := s.detector.LatestWindow(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	texts := make([]string, len(tweets))
	for i, t := range tweets {
		texts[i] = t.Text
	}
	results := s.analyzer.AnalyzeAll(texts)

	writeJSON(w, http.StatusOK, map[string]any{
		"window":   windowKey,
		"summary":  sentiment.Aggregate(results),
		"keyTerms": sentiment.ExtractKeyTerms(results),
		"count":    len(results),
	})
}

func (s *Server) handleEmergingTopics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	limit := queryInt(r, "limit", 10)
	emerging, err := s.detector.EmergingTopics(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, emerging)
}

func (s *Server) handleTopicTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	hashtag := r.URL.Query().Get("hashtag")
	if hashtag == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hashtag parameter required"})
		return
	}

	timeline, err := s.detector.TopicTimeline(r.Context(), hashtag)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, timeline)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
