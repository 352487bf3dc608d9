package resthttp

import (
	"log"
	"net/http"
	"time"
)

// gcOnce вручную запускает очистку разбиений старше SplitTTL. При SplitTTL <= 0 разбиения
// бессрочные, и очистка ничего не делает.
func (s *Server) gcOnce(w http.ResponseWriter, _ *http.Request) {
	if s.Cfg.SplitTTL <= 0 {
		writeJSON(w, http.StatusOK, map[string]int{"removed": 0})
		return
	}
	removed := s.Store.Sweep(time.Now().UTC(), s.Cfg.SplitTTL)
	log.Printf("manual GC: removed %d splits", removed)
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}
