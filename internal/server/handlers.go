// Package server - handlers.go implements the API endpoints.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-finder/internal/types"
)

var validate = validator.New()

// handleWelcome identifies the service at the root path.
func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Job Finder API",
	})
}

// handleSearchJobs runs a job search for the posted criteria.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	var criteria types.SearchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(criteria); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jobs, err := s.searcher.Search(r.Context(), criteria)
	if err != nil {
		log.Printf("[SERVER] Search failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "search failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.SearchResponse{RelevantJobs: jobs})
}

// validationMessage turns validator errors into a readable message
// naming the offending JSON fields.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", "))
}
