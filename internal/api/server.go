// Package api exposes routing-number lookups and account validation over
// HTTP.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"blzcheck/internal/bankdir"
	"blzcheck/internal/kontocheck"
	"blzcheck/internal/lut"
)

// Server holds the handlers' shared state. db carries the optional bank
// directory metadata and may be nil; lookups then fall back to the raw
// lookup table.
type Server struct {
	dir *lut.Directory
	db  *sql.DB
	log zerolog.Logger
}

// NewServer creates a server around a lookup directory and an optional
// bank metadata database.
func NewServer(dir *lut.Directory, db *sql.DB, logger zerolog.Logger) *Server {
	return &Server{dir: dir, db: db, log: logger}
}

// ValidateReq is the request body for POST /validate. Either a method
// identifier or a routing number must be given; an explicit method wins.
type ValidateReq struct {
	AccountNumber string `json:"accountNumber"`
	BLZ           string `json:"blz,omitempty"`
	Method        string `json:"method,omitempty"`
}

// ValidateResp reports the validation outcome. Valid is the boolean
// surface; Result carries the full four-way distinction.
type ValidateResp struct {
	Valid  bool   `json:"valid"`
	Result string `json:"result"`
	Method string `json:"method"`
	BLZ    string `json:"blz,omitempty"`
}

// BankResp describes one bank. The descriptive fields are omitted when
// only the lookup table is available.
type BankResp struct {
	BLZ         string `json:"blz"`
	Method      string `json:"method"`
	Implemented bool   `json:"implemented"`
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	BIC         string `json:"bic,omitempty"`
}

// Health reports whether the lookup table loaded and how many routing
// numbers it holds.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"lutLoaded":  s.dir.Loaded(),
		"lutEntries": s.dir.Len(),
	})
}

// GetBankMethod returns the check-digit method for one routing number.
func (s *Server) GetBankMethod(w http.ResponseWriter, r *http.Request) {
	blz := chi.URLParam(r, "blz")

	method, ok := s.dir.Lookup(blz)
	if !ok {
		sendError(w, http.StatusNotFound, "Unknown routing number")
		return
	}

	sendJSON(w, http.StatusOK, BankResp{
		BLZ:         blz,
		Method:      kontocheck.FormatMethodID(method),
		Implemented: kontocheck.Implemented(method),
	})
}

// GetBank returns the directory entry for one routing number, falling
// back to the bare lookup table when no metadata database is attached.
func (s *Server) GetBank(w http.ResponseWriter, r *http.Request) {
	blz := chi.URLParam(r, "blz")

	if s.db != nil {
		bank, err := bankdir.GetBank(s.db, blz)
		if err != nil {
			s.log.Error().Err(err).Str("blz", blz).Msg("bank lookup failed")
			sendError(w, http.StatusInternalServerError, "Bank lookup failed")
			return
		}
		if bank != nil {
			sendJSON(w, http.StatusOK, BankResp{
				BLZ:         bank.BLZ,
				Method:      kontocheck.FormatMethodID(bank.Method),
				Implemented: kontocheck.Implemented(bank.Method),
				Name:        bank.Name,
				City:        bank.City,
				BIC:         bank.BIC,
			})
			return
		}
	}

	s.GetBankMethod(w, r)
}

// ValidateAccount runs the check-digit validation for one account number.
func (s *Server) ValidateAccount(w http.ResponseWriter, r *http.Request) {
	var req ValidateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AccountNumber == "" {
		sendError(w, http.StatusBadRequest, "Account number is required")
		return
	}

	var id byte
	switch {
	case req.Method != "":
		parsed, ok := kontocheck.ParseMethodID(req.Method)
		if !ok {
			sendError(w, http.StatusBadRequest, "Invalid method identifier")
			return
		}
		id = parsed
	case req.BLZ != "":
		method, ok := s.dir.Lookup(req.BLZ)
		if !ok {
			sendError(w, http.StatusNotFound, "Unknown routing number")
			return
		}
		id = method
	default:
		sendError(w, http.StatusBadRequest, "Either method or blz is required")
		return
	}

	result := kontocheck.ValidateAccount(req.AccountNumber, id, req.BLZ)
	sendJSON(w, http.StatusOK, ValidateResp{
		Valid:  result == kontocheck.Valid,
		Result: result.String(),
		Method: kontocheck.FormatMethodID(id),
		BLZ:    req.BLZ,
	})
}

func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func sendError(w http.ResponseWriter, status int, msg string) {
	sendJSON(w, status, map[string]string{"error": msg})
}
