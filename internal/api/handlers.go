package api

import (
	"encoding/json"
	"github.com/fpawel/ltool/internal/inductor"
	"net/http"
	"strings"
)

func colorsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJson(w, inductor.Colors())
}

// colorsRoleHandler serves /api/colors/{role}, role in digit, multiplier,
// tolerance.
func colorsRoleHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	role := inductor.Role(strings.TrimPrefix(r.URL.Path, "/api/colors/"))
	switch role {
	case inductor.RoleDigit, inductor.RoleMultiplier, inductor.RoleTolerance:
	default:
		http.Error(w, "unknown role", http.StatusNotFound)
		return
	}
	var xs []inductor.Color
	for _, c := range inductor.Colors() {
		if inductor.ValidForRole(c, role) {
			xs = append(xs, c)
		}
	}
	writeJson(w, xs)
}

func decodeHandler(w http.ResponseWriter, r *http.Request) {
	var bands []string
	switch r.Method {
	case http.MethodGet:
		bands = r.URL.Query()["band"]
	case http.MethodPost:
		var req struct {
			Bands []string `json:"bands"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		bands = req.Bands
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := inductor.Decode(bands)
	if err != nil {
		// report every bad band when there is more than one
		if errAll := inductor.ValidateBands(bands); errAll != nil {
			err = errAll
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJson(w, result)
}

func writeJson(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.PrintErr(err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{msg})
}
