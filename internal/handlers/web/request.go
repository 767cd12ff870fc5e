package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/tracker"
)

// badRequest is a malformed parameter or body
type badRequest string

func (e badRequest) Error() string {
	return string(e)
}

// parseQuery reads the history filters shared by games, stats and export
func parseQuery(v url.Values) (tracker.Query, error) {
	var q tracker.Query

	for name, dst := range map[string]**int{
		"min_players": &q.Criteria.MinPlayers,
		"max_players": &q.Criteria.MaxPlayers,
	} {
		raw := strings.TrimSpace(v.Get(name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return tracker.Query{}, badRequest(fmt.Sprintf("invalid %s %q", name, raw))
		}
		*dst = &n
	}

	for name, dst := range map[string]*models.Date{
		"from": &q.Criteria.DateFrom,
		"to":   &q.Criteria.DateTo,
	} {
		raw := strings.TrimSpace(v.Get(name))
		if raw == "" {
			continue
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			return tracker.Query{}, badRequest(err.Error())
		}
		*dst = d
	}

	q.Criteria.Player = strings.TrimSpace(v.Get("player"))
	q.Criteria.AdversaryName = strings.TrimSpace(v.Get("adversary"))
	q.Search = v.Get("q")
	return q, nil
}

func parseBool(v url.Values, name string) (bool, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return b, nil
}

// toDraft converts a record request into a tracker draft
func (req *recordGameRequest) toDraft() (tracker.GameDraft, error) {
	draft := tracker.GameDraft{
		AdversaryName:  req.Adversary,
		AdversaryLevel: req.Level,
		Notes:          req.Notes,
	}

	if strings.TrimSpace(req.DatePlayed) != "" {
		d, err := models.ParseDate(req.DatePlayed)
		if err != nil {
			return tracker.GameDraft{}, badRequest(err.Error())
		}
		draft.DatePlayed = d
	}

	outcome, err := models.ParseOutcome(req.Outcome)
	if err != nil {
		return tracker.GameDraft{}, badRequest(err.Error())
	}
	draft.Outcome = outcome

	for _, seat := range req.Seats {
		draft.Seats = append(draft.Seats, tracker.SeatDraft{
			Player: seat.Player,
			Spirit: seat.Spirit,
			Aspect: seat.Aspect,
		})
	}
	return draft, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing %s: %v", filename, err)
	}
}

// writeError maps an error onto a status and a JSON body. Only client
// errors expose their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if br, ok := err.(badRequest); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: string(br)})
		return
	}

	te, ok := tracker.AsTrackerError(err)
	if status := statusFor(te); ok && status != http.StatusInternalServerError {
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	log.Printf("[%s] Error handling %s %s: %v", requestID(r), r.Method, r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func statusFor(err tracker.TrackerError) int {
	switch err {
	case tracker.ErrUnknownPlayer,
		tracker.ErrUnknownSpirit,
		tracker.ErrUnknownAdversary,
		tracker.ErrInvalidLevel,
		tracker.ErrInvalidComplexity,
		tracker.ErrNoSeats,
		tracker.ErrDuplicatePlayer,
		tracker.ErrOutcomeRequired,
		tracker.ErrInvalidPlayerName,
		tracker.ErrMalformedImport:
		return http.StatusBadRequest
	case tracker.ErrNoCandidates:
		return http.StatusNotFound
	case tracker.ErrPlayerExists:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// parseSort reads the history order, newest when absent
func parseSort(v url.Values) (history.SortOrder, error) {
	order, err := history.ParseSortOrder(v.Get("sort"))
	if err != nil {
		return "", badRequest(err.Error())
	}
	return order, nil
}
