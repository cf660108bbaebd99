package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shaker/internal/cache"
	"shaker/internal/catalog"
	"shaker/internal/cocktail"
	"shaker/internal/config"
	"shaker/internal/library"
	"shaker/internal/store"
)

type server struct {
	store *store.Store
	lib   *library.Library
}

func runServer(cfg *config.Config, addr string) error {
	s := &server{}
	s.store = store.New(cache.NewFileCache(cfg.Storage.DataDir))
	s.lib = library.New(s.store, catalog.NewClient(cfg.Catalog))

	srv := &http.Server{Addr: addr, Handler: s.routes()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("shaker listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /options", s.handleOptions)
	mux.HandleFunc("GET /cocktails", s.handleList)
	mux.HandleFunc("POST /cocktails", s.handleCreate)
	mux.HandleFunc("GET /cocktails/{id}", s.handleGet)
	mux.HandleFunc("PUT /cocktails/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /cocktails/{id}", s.handleDelete)
	return mux
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.lib.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if results == nil {
		results = []cocktail.Recipe{}
	}
	writeJSON(w, http.StatusOK, results)
}

// handleOptions serves the pick lists the create/edit form renders.
func (s *server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"glasses":   cocktail.GlassOptions,
		"alcoholic": cocktail.AlcoholicOptions,
	})
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListAll())
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.lib.Resolve(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft cocktail.Recipe
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid recipe payload", http.StatusBadRequest)
		return
	}
	if err := draft.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.store.Create(draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var recipe cocktail.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, "invalid recipe payload", http.StatusBadRequest)
		return
	}
	recipe.ID = r.PathValue("id")
	if err := recipe.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := s.store.Update(recipe)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !updated {
		http.Error(w, "no custom cocktail with that id", http.StatusNotFound)
		return
	}

	// Respond with the stored state, not the request echo: the store
	// re-stamps the custom flag and drops unnamed ingredients.
	stored, err := s.store.GetByID(recipe.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := s.store.Remove(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !removed {
		http.Error(w, "no custom cocktail with that id", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cocktail.ErrNotFound):
		http.Error(w, "cocktail not found", http.StatusNotFound)
	case errors.Is(err, library.ErrSearchFailed), errors.Is(err, catalog.ErrUnavailable):
		slog.ErrorContext(r.Context(), "catalog request failed", "error", err)
		http.Error(w, "cocktail catalog is unavailable, try again", http.StatusBadGateway)
	case errors.Is(err, store.ErrWriteFailed):
		slog.ErrorContext(r.Context(), "local store write failed", "error", err)
		http.Error(w, "could not save your recipe", http.StatusInsufficientStorage)
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
