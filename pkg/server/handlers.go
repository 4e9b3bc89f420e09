package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/slidertrack/pkg/buildinfo"
	"github.com/matzehuels/slidertrack/pkg/config"
	"github.com/matzehuels/slidertrack/pkg/errors"
	"github.com/matzehuels/slidertrack/pkg/pipeline"
	"github.com/matzehuels/slidertrack/pkg/preset"
	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/space"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type planResponse struct {
	SettingsHash string       `json:"settings_hash"`
	Segments     segment.Plan `json:"segments"`
	Cached       bool         `json:"cached"`
}

type vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (v vec3) space() space.Vec3 { return space.V3(v.X, v.Y, v.Z) }

func fromSpace(v space.Vec3) vec3 { return vec3{X: v.X, Y: v.Y, Z: v.Z} }

type frameRequest struct {
	Origin  vec3  `json:"origin"`
	Up      vec3  `json:"up"`
	Forward vec3  `json:"forward"`
	Scale   *vec3 `json:"scale,omitempty"`
}

func (f *frameRequest) frame() space.Frame {
	if f == nil {
		return space.Identity()
	}
	fr := space.NewFrame(f.Origin.space(), f.Up.space(), f.Forward.space())
	if f.Scale != nil {
		fr = fr.WithScale(f.Scale.space())
	}
	return fr
}

type nearestRequest struct {
	Settings config.Settings `json:"settings"`
	Point    vec3            `json:"point"`
	Frame    *frameRequest   `json:"frame,omitempty"`
}

type nearestResponse struct {
	Value    float32 `json:"value"`
	Position vec3    `json:"position"`
}

type renderRequest struct {
	Settings config.Settings `json:"settings"`
	Scale    float64         `json:"scale,omitempty"`
	Theme    string          `json:"theme,omitempty"`
	Labels   bool            `json:"labels,omitempty"`
	Width    int             `json:"width,omitempty"`
	Detailed bool            `json:"detailed,omitempty"`
	Refresh  bool            `json:"refresh,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	settings := config.Default()
	if err := decodeBody(r, &settings); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.plan(w, r, settings)
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request, settings config.Settings) {
	res, err := s.runner.Plan(r.Context(), pipeline.Options{Settings: settings})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{
		SettingsHash: res.SettingsHash,
		Segments:     res.Plan,
		Cached:       res.CacheInfo.PlanHit,
	})
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	req := nearestRequest{Settings: config.Default()}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	slider, _, err := s.runner.Build(r.Context(), pipeline.Options{Settings: req.Settings})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	slider.Frame = req.Frame.frame()

	p := req.Point.space()
	writeJSON(w, http.StatusOK, nearestResponse{
		Value:    slider.ValueViaNearestWorldPosition(p),
		Position: fromSpace(slider.NearestWorldPosition(p)),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	req := renderRequest{Settings: config.Default()}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Render(r.Context(), pipeline.Options{
		Settings: req.Settings,
		Formats:  []string{format},
		Scale:    req.Scale,
		Theme:    req.Theme,
		Labels:   req.Labels,
		Width:    req.Width,
		Detailed: req.Detailed,
		Refresh:  req.Refresh,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Settings-Hash", res.SettingsHash)
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) presetStore() (preset.Store, error) {
	if s.presets == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "preset storage is not configured")
	}
	return s.presets, nil
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	store, err := s.presetStore()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	list, err := store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []*preset.Preset{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	store, err := s.presetStore()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutPreset(w http.ResponseWriter, r *http.Request) {
	store, err := s.presetStore()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	settings := config.Default()
	if err := decodeBody(r, &settings); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := preset.New(chi.URLParam(r, "name"), settings)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := store.Put(r.Context(), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	store, err := s.presetStore()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePresetPlan(w http.ResponseWriter, r *http.Request) {
	store, err := s.presetStore()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.plan(w, r, p.Settings)
}
