// Package web is the rendering surface: a localhost server that renders the
// whole UI from the current document on every request and maps each control
// to one service operation. It is not a backend; it owns no state of its own.
package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ivnagustin/lock-logger-pwa/internal/assets"
	"github.com/ivnagustin/lock-logger-pwa/internal/common"
	"github.com/ivnagustin/lock-logger-pwa/internal/logging"
	"github.com/ivnagustin/lock-logger-pwa/internal/model"
	"github.com/ivnagustin/lock-logger-pwa/internal/service"
)

// 1 MiB is plenty for an export of a 200-entry document.
const maxImportSize = 1 << 20

type Server struct {
	svc   *service.Log
	cache *assets.Cache
	log   logging.Logger
	tmpl  *template.Template
}

func NewServer(svc *service.Log, cache *assets.Cache, log logging.Logger) *Server {
	return &Server{
		svc:   svc,
		cache: cache,
		log:   log.With("component", "web"),
		tmpl:  parseTemplates(),
	}
}

// Router mounts every UI route. Static assets go through the offline cache
// handler; everything else renders or mutates the document.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	cacheHandler := assets.NewHandler(s.cache, nil)
	r.Handle("/assets/*", http.StripPrefix("/assets", cacheHandler))
	r.Handle("/manifest.webmanifest", cacheHandler)

	r.Get("/", s.handleIndex)
	r.Post("/entries", s.handleRecord)
	r.Post("/entries/undo", s.handleUndo)
	r.Post("/lockables", s.handleAddLockable)
	r.Get("/export", s.handleExport)
	r.Post("/import", s.handleImport)
	r.Post("/share", s.handleShare)
	r.Post("/theme", s.handleTheme)

	return r
}

type lockableView struct {
	model.Lockable
	TextColor string
}

type entryView struct {
	Icon string
	Name string
	Note string
	When string
}

type dayView struct {
	Label string
	Count int
	Pct   int
}

type indexData struct {
	Theme       model.Theme
	Message     string
	Streak      int
	Lockables   []lockableView
	Days        []dayView
	Entries     []entryView
	Query       string
	CanUndo     bool
	ConfirmNote bool
	Suggestions []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := s.svc.Document()
	query := r.URL.Query().Get("q")

	data := indexData{
		Theme:       doc.Prefs.Theme,
		Message:     r.URL.Query().Get("msg"),
		Streak:      s.svc.Streak(),
		Query:       query,
		CanUndo:     len(doc.Entries) > 0,
		ConfirmNote: doc.Prefs.ConfirmNote,
		Suggestions: doc.Prefs.QuickNoteSuggestions,
	}

	for _, l := range doc.Lockables {
		data.Lockables = append(data.Lockables, lockableView{
			Lockable:  l,
			TextColor: model.ReadableTextColor(l.Color),
		})
	}

	days := s.svc.Last7()
	peak := 1
	for _, d := range days {
		if d.Count > peak {
			peak = d.Count
		}
	}
	for _, d := range days {
		data.Days = append(data.Days, dayView{
			Label: d.Label,
			Count: d.Count,
			Pct:   d.Count * 100 / peak,
		})
	}

	for _, e := range service.FilteredEntries(doc, query) {
		v := entryView{
			Icon: model.DefaultIcon,
			Name: e.LockableID,
			Note: e.Note,
			When: e.TS.Local().Format("02/01/2006 15:04"),
		}
		if l := doc.Lockable(e.LockableID); l != nil {
			v.Icon, v.Name = l.Icon, l.Name
		}
		data.Entries = append(data.Entries, v)
	}

	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		s.log.Error(r.Context(), "rendering index", "err", err)
	}
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	lockableID := r.PostFormValue("lockable_id")
	note := r.PostFormValue("note")

	if _, err := s.svc.RecordEntry(r.Context(), lockableID, note); err != nil {
		s.redirect(w, r, "No se pudo registrar")
		return
	}
	s.redirect(w, r, "")
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.UndoLast(r.Context()); err != nil {
		s.redirect(w, r, "No se pudo deshacer")
		return
	}
	s.redirect(w, r, "")
}

func (s *Server) handleAddLockable(w http.ResponseWriter, r *http.Request) {
	_, err := s.svc.AddLockable(r.Context(),
		r.PostFormValue("name"), r.PostFormValue("icon"), r.PostFormValue("color"))
	switch {
	case errors.Is(err, common.ErrNameRequired):
		s.redirect(w, r, "El nombre es obligatorio")
	case errors.Is(err, common.ErrIconRequired):
		s.redirect(w, r, "El ícono es obligatorio")
	case err != nil:
		s.redirect(w, r, "No se pudo agregar")
	default:
		s.redirect(w, r, "")
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", model.ExportFileName))
	if err := s.svc.Export(w); err != nil {
		s.log.Error(r.Context(), "exporting document", "err", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		s.redirect(w, r, "Archivo inválido")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		s.redirect(w, r, "Archivo inválido")
		return
	}

	if err := s.svc.Import(r.Context(), data); err != nil {
		s.redirect(w, r, "Formato inválido")
		return
	}
	s.redirect(w, r, "Datos importados")
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	method, summary, err := s.svc.ShareLast(r.Context())
	switch {
	case errors.Is(err, common.ErrNoEntries):
		s.redirect(w, r, "Sin registros para compartir")
	case err != nil:
		s.redirect(w, r, "No se pudo compartir")
	case method == "notice":
		// The terminal fallback: show the summary right here.
		s.redirect(w, r, summary)
	default:
		s.redirect(w, r, "Compartido ("+method+")")
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	theme := model.Theme(r.PostFormValue("theme"))
	if err := s.svc.UpdateTheme(r.Context(), theme); err != nil {
		s.redirect(w, r, "Tema inválido")
		return
	}
	s.redirect(w, r, "")
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, msg string) {
	target := "/"
	if msg != "" {
		target = "/?msg=" + url.QueryEscape(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.log.Debug(r.Context(), "request", "method", r.Method, "path", r.URL.Path)
	})
}
