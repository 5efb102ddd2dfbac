// notesapi/routes/notes.go
package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"notesapi/notesapi/controllers"

	"github.com/go-chi/chi/v5"
)

func handleNotesJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		if res == nil {
			// 404 and 204 carry no body
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// parseDate accepts a plain date or a full RFC 3339 timestamp, read in
// server-local time. An absent parameter yields the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.RFC3339, value, time.Local)
}

type noteInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func NotesRoutes(ctrl *controllers.NotesController) chi.Router {
	r := chi.NewRouter()

	// List all notes
	r.Get("/", handleNotesJSON(func(r *http.Request) (any, int, error) {
		notes, err := ctrl.ListNotes(r.Context())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return notes, http.StatusOK, nil
	}))

	// Grouped aggregations; static segments, so they never collide
	// with /{id}.
	r.Get("/grouped-by-created-date", handleNotesJSON(func(r *http.Request) (any, int, error) {
		from, err := parseDate(r.URL.Query().Get("fromDate"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		to, err := parseDate(r.URL.Query().Get("toDate"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		groups, err := ctrl.GroupByCreatedDate(r.Context(), from, to)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return groups, http.StatusOK, nil
	}))

	r.Get("/grouped-by-updated-date", handleNotesJSON(func(r *http.Request) (any, int, error) {
		from, err := parseDate(r.URL.Query().Get("fromDate"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		to, err := parseDate(r.URL.Query().Get("toDate"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		groups, err := ctrl.GroupByUpdatedDate(r.Context(), from, to)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return groups, http.StatusOK, nil
	}))

	// Get single note
	r.Get("/{id}", handleNotesJSON(func(r *http.Request) (any, int, error) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		note, err := ctrl.GetNote(r.Context(), id)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if note == nil {
			return nil, http.StatusNotFound, nil
		}
		return note, http.StatusOK, nil
	}))

	// Create note; id and timestamps are server-assigned, anything the
	// client sends for them is dropped by the input struct.
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req noteInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		note, err := ctrl.CreateNote(r.Context(), req.Title, req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Location", fmt.Sprintf("/api/note/%d", note.ID))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(note)
	})

	// Update note
	r.Put("/{id}", handleNotesJSON(func(r *http.Request) (any, int, error) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var req noteInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		note, err := ctrl.UpdateNote(r.Context(), id, req.Title, req.Body)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if note == nil {
			return nil, http.StatusNotFound, nil
		}
		return note, http.StatusOK, nil
	}))

	// Delete note
	r.Delete("/{id}", handleNotesJSON(func(r *http.Request) (any, int, error) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		deleted, err := ctrl.DeleteNote(r.Context(), id)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if !deleted {
			return nil, http.StatusNotFound, nil
		}
		return nil, http.StatusNoContent, nil
	}))

	return r
}
