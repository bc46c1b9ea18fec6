package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/pipeline"
	"github.com/trevorsandy/lpub3dNext/pkg/session"
)

// ParseRequest carries an inline model for interpretation. The server
// never reads paths from the request; clients upload the document.
type ParseRequest struct {
	Model  string `json:"model"`
	Source string `json:"source"`
	Strict bool   `json:"strict,omitempty"`
}

// ParseResponse summarizes an interpreter run.
type ParseResponse struct {
	Model      string             `json:"model"`
	Lines      int                `json:"lines"`
	Directives int                `json:"directives"`
	Steps      int                `json:"steps"`
	BomParts   int                `json:"bom_parts"`
	Failures   []pipeline.Failure `json:"failures,omitempty"`
	Actions    int                `json:"actions"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "source is required"))
		return
	}

	opts := s.base
	opts.Model = modelName(req.Model)
	opts.ModelSource = req.Source
	opts.Strict = req.Strict

	doc, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ParseResponse{
		Model:      opts.Model,
		Lines:      doc.Lines,
		Directives: doc.Directives,
		Steps:      doc.StepCount,
		BomParts:   len(doc.Bom),
		Failures:   doc.Failures,
		Actions:    len(doc.Actions),
	})
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	lines := meta.New().Doc(nil)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.Join(lines, "\n") + "\n"))
}

// LayoutRequest carries an inline model plus layout overrides.
type LayoutRequest struct {
	Model     string  `json:"model"`
	Source    string  `json:"source"`
	Bom       bool    `json:"bom,omitempty"`
	BomParts  int     `json:"bom_parts,omitempty"`
	Constrain string  `json:"constrain,omitempty"`
	Magnitude float32 `json:"magnitude,omitempty"`
	SortBy    string  `json:"sort_by,omitempty"`
	Renderer  string  `json:"renderer,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`
	SessionID string  `json:"session_id,omitempty"`
}

// LayoutResponse returns the built layouts along with the session that
// now tracks them.
type LayoutResponse struct {
	SessionID string           `json:"session_id"`
	ModelHash string           `json:"model_hash"`
	Layouts   pipeline.Layouts `json:"layouts"`
	Stats     pipeline.Stats   `json:"stats"`
	CacheHit  bool             `json:"cache_hit"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "source is required"))
		return
	}

	opts := s.base
	opts.Model = modelName(req.Model)
	opts.ModelSource = req.Source
	opts.Bom = req.Bom
	opts.BomParts = req.BomParts
	opts.Constrain = req.Constrain
	opts.Magnitude = req.Magnitude
	opts.SortBy = req.SortBy
	opts.Refresh = req.Refresh
	if req.Renderer != "" {
		opts.Renderer = req.Renderer
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess, err := s.resumeOrCreate(r, req.SessionID, opts.Model)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess.AddLayout(result.ModelHash)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeCache, err, "store session"))
		return
	}

	writeJSON(w, http.StatusOK, LayoutResponse{
		SessionID: sess.ID,
		ModelHash: result.ModelHash,
		Layouts:   result.Layouts,
		Stats:     result.Stats,
		CacheHit:  result.CacheInfo.LayoutHit,
	})
}

// resumeOrCreate looks up the client's session, falling back to a fresh
// one when the id is absent or expired.
func (s *Server) resumeOrCreate(r *http.Request, id, model string) (*session.Session, error) {
	if id != "" {
		sess, err := s.sessions.Get(r.Context(), id)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "load session")
		}
		if sess != nil {
			return sess, nil
		}
	}
	return session.New(model, session.DefaultTTL), nil
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeCache, err, "load session"))
		return
	}
	if sess == nil {
		s.writeError(w, errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func modelName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "model.ldr"
	}
	return name
}
