// Package server wires the public serving surface: tenant-resolved page
// requests answered from the two-generation render cache.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/advisorhq/web/internal/cache"
	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/render"
	"github.com/advisorhq/web/internal/tenant"
	"github.com/advisorhq/web/internal/web/middleware"
)

const pageCacheClass = "page"

type Handler struct {
	pages        *page.Service
	renderer     *render.Renderer
	cacheManager cache.Manager
	log          logr.Logger
}

func NewHandler(pages *page.Service, renderer *render.Renderer, cacheManager cache.Manager, log logr.Logger) *Handler {
	return &Handler{
		pages:        pages,
		renderer:     renderer,
		cacheManager: cacheManager,
		log:          log.WithName("server"),
	}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	t, ok := middleware.TenantFrom(r.Context())
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.URL.Path != "/" {
		h.serveNotFound(w, t)
		return
	}

	rendered, err := h.renderer.RenderHome(t)
	if err != nil {
		h.log.Error(err, "failed to render home", "tenant", t.ID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	serveHTML(w, http.StatusOK, rendered)
}

// pageBySlug answers /page/{slug} from the render cache. A stale hit is
// served immediately and re-rendered in the background; a miss renders
// synchronously.
func (h *Handler) pageBySlug(w http.ResponseWriter, r *http.Request) {
	t, ok := middleware.TenantFrom(r.Context())
	if !ok {
		http.NotFound(w, r)
		return
	}
	slug := r.PathValue("slug")

	pageCache := h.cacheManager.Cache(pageCacheClass)
	cacheKey := fmt.Sprintf("%s:%s", t.ID, slug)

	rendered, ok, isCurrent, err := pageCache.Get(r.Context(), cacheKey)
	if err != nil {
		h.log.Error(err, "failed to get from cache", "tenant", t.ID, "slug", slug)
	}

	if ok {
		if !isCurrent {
			h.log.V(1).Info("serving stale page, migrating in background", "tenant", t.ID, "slug", slug)

			go func(t tenant.Tenant, slug, cacheKey string) {
				bgCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				fresh, status, err := h.renderSlug(t, slug)
				if err != nil {
					h.log.Error(err, "background migration failed", "tenant", t.ID, "slug", slug)
					return
				}
				if status == http.StatusOK {
					_ = pageCache.Set(bgCtx, cacheKey, fresh)
				} else {
					// page vanished or was unpublished since the stale render
					_ = pageCache.Delete(bgCtx, cacheKey)
				}
			}(t, slug, cacheKey)
		}

		serveHTML(w, http.StatusOK, rendered)
		return
	}

	rendered, status, err := h.renderSlug(t, slug)
	if err != nil {
		h.log.Error(err, "failed to render page", "tenant", t.ID, "slug", slug)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if status == http.StatusOK {
		if err := pageCache.Set(r.Context(), cacheKey, rendered); err != nil {
			h.log.Error(err, "failed to set cache", "tenant", t.ID, "slug", slug)
		}
	}
	serveHTML(w, status, rendered)
}

// renderSlug renders the published page for a slug, or the tenant's 404
// document when the slug is missing or unpublished.
func (h *Handler) renderSlug(t tenant.Tenant, slug string) (string, int, error) {
	p, err := h.pages.FindPublished(t.ID, slug)
	if err != nil {
		if errors.Is(err, page.ErrNotFound) {
			rendered, rerr := h.renderer.RenderNotFound(t)
			return rendered, http.StatusNotFound, rerr
		}
		return "", 0, err
	}

	rendered, err := h.renderer.RenderPage(t, p)
	return rendered, http.StatusOK, err
}

func (h *Handler) serveNotFound(w http.ResponseWriter, t tenant.Tenant) {
	rendered, err := h.renderer.RenderNotFound(t)
	if err != nil {
		h.log.Error(err, "failed to render not-found", "tenant", t.ID)
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	serveHTML(w, http.StatusNotFound, rendered)
}

func serveHTML(w http.ResponseWriter, status int, rendered string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(rendered))
}
