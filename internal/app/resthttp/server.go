package resthttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sir_venger/textsplit/internal/config"
	meta "github.com/sir_venger/textsplit/internal/repo"
	"github.com/sir_venger/textsplit/internal/usecase/splitsvc"
)

// multipartOverhead — запас на заголовки и границы multipart-формы сверх лимита содержимого.
const multipartOverhead = 1 << 20

type Server struct {
	SplitService splitsvc.Service
	Store        *meta.MemoryStore
	Cfg          *config.Config
}

// NewServer конструктор
func NewServer(cfg *config.Config) (http.Handler, *Server, error) {
	store := meta.NewMemoryStore()
	splits := splitsvc.New(splitsvc.Deps{
		MetaStorage:    store,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Unit:           cfg.Unit,
		RejectBinary:   cfg.BinaryRejected(),
		Decimals:       cfg.Decimals(),
	})

	srv := &Server{
		SplitService: splits,
		Store:        store,
		Cfg:          cfg,
	}

	return srv.routes(), srv, nil
}

func (s *Server) routes() http.Handler {
	rtr := chi.NewRouter()
	rtr.Use(middleware.RequestID)
	rtr.Use(middleware.RealIP)
	rtr.Use(middleware.Logger)
	rtr.Use(middleware.Recoverer)

	rtr.Post("/splits", s.postSplits)
	rtr.Route("/splits/{id}", func(sr chi.Router) {
		sr.Get("/", s.getSplit)
		sr.Delete("/", s.deleteSplit)
		sr.Get("/parts/{idx}", s.getPart)
	})
	rtr.Get("/estimate", s.getEstimate)
	rtr.Get("/health", s.health)
	rtr.Get("/admin/config", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, http.StatusOK, s.Cfg) })
	rtr.Post("/admin/gc", s.gcOnce)

	return rtr
}

// health отдаёт признак живости и число разбиений в памяти.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"splits": s.Store.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
