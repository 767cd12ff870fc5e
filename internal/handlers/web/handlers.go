package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/messaging"
	"github.com/f4hy/blightedisland/internal/services/tracker"
	"github.com/f4hy/blightedisland/internal/stats"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	output, err := s.tracker.GetCatalog(r.Context(), &tracker.GetCatalogInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, catalogResponse{
		Adversaries: output.Adversaries,
		MinLevel:    output.MinLevel,
		MaxLevel:    output.MaxLevel,
		Spirits:     output.Spirits,
		Players:     output.Players,
	})
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	output, err := s.tracker.ListPlayers(r.Context(), &tracker.ListPlayersInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playersResponse{Players: output.Players})
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest("invalid player: "+err.Error()))
		return
	}

	output, err := s.tracker.AddPlayer(r.Context(), &tracker.AddPlayerInput{Name: req.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Player)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	query, err := parseQuery(v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	order, err := parseSort(v)
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := s.tracker.ListGames(r.Context(), &tracker.ListGamesInput{
		Query: query,
		Sort:  order,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	games := output.Games
	if games == nil {
		games = []*models.Game{}
	}
	writeJSON(w, http.StatusOK, gamesResponse{
		Games:    games,
		Warnings: nonNil(output.Warnings),
	})
}

func (s *Server) handleRecordGame(w http.ResponseWriter, r *http.Request) {
	var req recordGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, badRequest("invalid game: "+err.Error()))
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := s.tracker.RecordGame(r.Context(), &tracker.RecordGameInput{Draft: draft})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := recordGameResponse{
		Game: output.Game,
		Path: output.Path,
	}
	msg, err := s.messaging.GetOutcomeMessage(r.Context(), &messaging.GetOutcomeMessageInput{
		Outcome:   output.Game.Outcome,
		Adversary: output.Game.Adversary,
	})
	if err != nil {
		log.Printf("[%s] Error getting outcome message: %v", requestID(r), err)
	} else {
		resp.Title = msg.Title
		resp.Message = msg.Message
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	query, err := parseQuery(v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	group, err := stats.ParseGroupKey(v.Get("group"))
	if err != nil {
		writeError(w, r, badRequest(err.Error()))
		return
	}

	output, err := s.tracker.GetStats(r.Context(), &tracker.GetStatsInput{
		Query: query,
		Group: group,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := statsResponse{
		Group:    output.Group,
		Rows:     output.Rows,
		Summary:  output.Summary,
		Trend:    output.Trend,
		Warnings: nonNil(output.Warnings),
	}
	msg, err := s.messaging.GetSummaryMessage(r.Context(), &messaging.GetSummaryMessageInput{
		Games:   output.Summary.Games,
		Wins:    output.Summary.Wins,
		Losses:  output.Summary.Losses,
		WinRate: output.Summary.WinRate,
	})
	if err != nil {
		log.Printf("[%s] Error getting summary message: %v", requestID(r), err)
	} else {
		resp.Message = msg.Message
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatsWorkbook(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := s.tracker.ExportStatsWorkbook(r.Context(), &tracker.ExportStatsWorkbookInput{Query: query})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAttachment(w, xlsxContentType, output.Filename, output.Data)
}

func (s *Server) handlePickAdversary(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	raw := strings.TrimSpace(v.Get("level"))
	if raw == "" {
		writeError(w, r, badRequest("level is required"))
		return
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, badRequest(fmt.Sprintf("invalid level %q", raw)))
		return
	}
	weighted, err := parseBool(v, "weighted")
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := s.tracker.PickAdversary(r.Context(), &tracker.PickAdversaryInput{
		Level:    level,
		Weighted: weighted,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := pickAdversaryResponse{
		Adversary: output.Adversary,
		Label:     output.Adversary.Label(),
		Stats:     output.Stats,
		Warnings:  nonNil(output.Warnings),
	}
	resp.Title, resp.Message = s.pickMessage(r, messaging.PickAdversary, resp.Label, output.Stats, weighted)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePickSpirit(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	var complexity models.Complexity
	if raw := strings.TrimSpace(v.Get("complexity")); raw != "" {
		c, err := models.ParseComplexity(raw)
		if err != nil {
			writeError(w, r, badRequest(err.Error()))
			return
		}
		complexity = c
	}
	weighted, err := parseBool(v, "weighted")
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := s.tracker.PickSpirit(r.Context(), &tracker.PickSpiritInput{
		Complexity: complexity,
		Weighted:   weighted,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := pickSpiritResponse{
		Spirit:   output.Spirit,
		Label:    output.Spirit.String(),
		Stats:    output.Stats,
		Warnings: nonNil(output.Warnings),
	}
	resp.Title, resp.Message = s.pickMessage(r, messaging.PickSpirit, resp.Label, output.Stats, weighted)
	writeJSON(w, http.StatusOK, resp)
}

// pickMessage returns the announcement for a pick, empty if none is available
func (s *Server) pickMessage(r *http.Request, kind messaging.PickKind, label string, record models.GroupStats, weighted bool) (string, string) {
	msg, err := s.messaging.GetPickMessage(r.Context(), &messaging.GetPickMessageInput{
		Kind:     kind,
		Label:    label,
		Stats:    record,
		Weighted: weighted,
	})
	if err != nil {
		log.Printf("[%s] Error getting pick message: %v", requestID(r), err)
		return "", ""
	}
	return msg.Title, msg.Message
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := s.tracker.ExportGames(r.Context(), &tracker.ExportGamesInput{Query: query})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAttachment(w, "application/json", output.Filename, output.Data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "import is too large"})
			return
		}
		writeError(w, r, badRequest("unable to read import: "+err.Error()))
		return
	}

	output, err := s.tracker.ImportGames(r.Context(), &tracker.ImportGamesInput{Data: data})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Imported: output.Imported,
		Failed:   output.Failed,
		Failures: nonNil(output.Failures),
	})
}
