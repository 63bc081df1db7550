// Package devserver implements the REST backend contract the client
// consumes, with json-server compatible semantics: query-parameter list
// filtering, generated ids on POST, an empty JSON object on DELETE. It
// exists so the client runs end to end without an external mock server.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/devserver/storage"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
)

type Server struct {
	store *storage.Store
	log   logging.Logger
}

func NewServer(store *storage.Store, log logging.Logger) *Server {
	return &Server{store: store, log: log}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /users", s.listUsers)
	mux.HandleFunc("POST /users", s.createUser)
	mux.HandleFunc("GET /users/{id}", s.getUser)
	mux.HandleFunc("POST /logout", s.logout)

	mux.HandleFunc("GET /categories", s.listCategories)
	mux.HandleFunc("POST /categories", s.createCategory)
	mux.HandleFunc("PUT /categories/{id}", s.updateCategory)
	mux.HandleFunc("DELETE /categories/{id}", s.deleteCategory)

	mux.HandleFunc("GET /transactions", s.listTransactions)
	mux.HandleFunc("POST /transactions", s.createTransaction)
	mux.HandleFunc("PUT /transactions/{id}", s.updateTransaction)
	mux.HandleFunc("DELETE /transactions/{id}", s.deleteTransaction)

	return s.withLogging(mux)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug(r.Context(), "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error(context.Background(), "encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
		return
	}
	s.log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.FindUsersByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, users)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	in, err := decode[storage.User](r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	created, err := s.store.CreateUser(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

// logout is accepted and ignored: the mock token scheme has no server-side
// session to tear down.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categories)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	in, err := decode[storage.Category](r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	created, err := s.store.CreateCategory(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	in, err := decode[storage.Category](r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	in.ID = r.PathValue("id")
	updated, err := s.store.UpdateCategory(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.store.ListTransactions(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	in, err := decode[storage.Transaction](r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	created, err := s.store.CreateTransaction(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	in, err := decode[storage.Transaction](r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	in.ID = r.PathValue("id")
	updated, err := s.store.UpdateTransaction(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTransaction(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{})
}
