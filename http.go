package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

func (s *server) runHTTP(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.HTTPListen,
		Handler:           s.newRouter(),
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	return httpServer.ListenAndServe()
}

func (s *server) newRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.adminAuthMiddleware)
		r.Get("/", s.handleIndex)
		r.Post("/add", s.handleAdd)
		r.Get("/edit/{id}", s.handleEditForm)
		r.Post("/edit/{id}", s.handleEdit)
		r.Post("/delete/{id}", s.handleDelete)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"uptime_sec": int(time.Since(s.start).Seconds()),
	})
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.list()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	aRecords, cnames := buildView(records)
	data := indexData{
		Zone:       s.cfg.LocalZone,
		ARecords:   aRecords,
		CNAMEs:     cnames,
		DefaultTTL: s.cfg.DefaultTTL,
		Message:    strings.TrimSpace(r.URL.Query().Get("msg")),
		Kind:       r.URL.Query().Get("kind"),
		Now:        time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.index.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *server) handleAdd(w http.ResponseWriter, r *http.Request) {
	rec, err := parseRecordForm(r)
	if err != nil {
		s.flash(w, r, err.Error(), "error")
		return
	}

	if rec.Type == typeCNAME {
		ip, err := s.syncer.resolver.resolve(r.Context(), rec.Value)
		if err != nil {
			s.flash(w, r, "Error resolving CNAME: "+err.Error(), "error")
			return
		}
		rec.ResolvedIP = ip
	}

	if _, err := s.store.create(rec); err != nil {
		s.flash(w, r, err.Error(), "error")
		return
	}

	s.finishMutation(w, r, "Record added")
}

func (s *server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.flash(w, r, "Invalid record id", "error")
		return
	}

	rec, err := s.store.get(id)
	if err != nil {
		if errors.Is(err, errRecordNotFound) {
			s.flash(w, r, "Record not found", "error")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.edit.Execute(w, editData{Record: rec}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.flash(w, r, "Invalid record id", "error")
		return
	}

	rec, err := parseRecordForm(r)
	if err != nil {
		s.flash(w, r, err.Error(), "error")
		return
	}
	rec.ID = id

	if rec.Type == typeCNAME {
		ip, err := s.syncer.resolver.resolve(r.Context(), rec.Value)
		if err != nil {
			s.flash(w, r, "Error resolving CNAME: "+err.Error(), "error")
			return
		}
		rec.ResolvedIP = ip
	}

	if err := s.store.update(rec); err != nil {
		if errors.Is(err, errRecordNotFound) {
			s.flash(w, r, "Record not found", "error")
			return
		}
		s.flash(w, r, err.Error(), "error")
		return
	}

	s.finishMutation(w, r, "Record updated")
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.flash(w, r, "Invalid record id", "error")
		return
	}

	if err := s.store.delete(id); err != nil {
		s.flash(w, r, err.Error(), "error")
		return
	}

	s.finishMutation(w, r, "Record deleted")
}

// finishMutation regenerates and activates the resolver configuration after
// a successful store mutation. The mutation stands either way; activation
// failure only degrades the flash message.
func (s *server) finishMutation(w http.ResponseWriter, r *http.Request, verb string) {
	if err := s.syncer.regenerate(r.Context()); err != nil {
		if errors.Is(err, errValidationFailed) || errors.Is(err, errRestartFailed) {
			s.flash(w, r, verb+", but resolver activation failed: "+err.Error(), "error")
			return
		}
		s.flash(w, r, verb+", but config regeneration failed: "+err.Error(), "error")
		return
	}

	s.flash(w, r, verb+" successfully", "success")
}

func (s *server) flash(w http.ResponseWriter, r *http.Request, msg, kind string) {
	http.Redirect(w, r, "/?msg="+url.QueryEscape(msg)+"&kind="+kind, http.StatusSeeOther)
}

func parseRecordForm(r *http.Request) (record, error) {
	domain := strings.TrimSpace(r.FormValue("domain"))
	recordType := strings.ToUpper(strings.TrimSpace(r.FormValue("type")))
	value := strings.TrimSpace(r.FormValue("value"))
	ttlRaw := strings.TrimSpace(r.FormValue("ttl"))

	if domain == "" || value == "" || ttlRaw == "" {
		return record{}, errors.New("all fields are required")
	}
	if recordType != typeA && recordType != typeCNAME {
		return record{}, errors.New("record type must be A or CNAME")
	}

	ttl, err := strconv.ParseUint(ttlRaw, 10, 32)
	if err != nil || ttl == 0 {
		return record{}, fmt.Errorf("invalid TTL value: %q", ttlRaw)
	}

	if recordType == typeA {
		ip := net.ParseIP(value)
		if ip == nil || ip.To4() == nil {
			return record{}, errors.New("type A requires an IPv4 address")
		}
		value = ip.String()
	}

	return record{Domain: domain, Type: recordType, Value: value, TTL: uint32(ttl)}, nil
}

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
}

func (s *server) adminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminPassHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != s.cfg.AdminUser ||
			bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPassHash), []byte(pass)) != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="unbound-admin"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
