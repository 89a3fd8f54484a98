package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/web/internal/cache"
	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/render"
	"github.com/advisorhq/web/internal/repository"
	"github.com/advisorhq/web/internal/section"
	"github.com/advisorhq/web/internal/tenant"
	"github.com/advisorhq/web/internal/tools"
)

type fixture struct {
	server  *http.Server
	store   *tenant.Store
	manager cache.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemory()
	require.NoError(t, repo.Persist(context.Background(), tenant.Tenant{
		ID:             "tenant-1",
		Name:           "Opulence Capital",
		Domain:         "opulence.com",
		WelcomeMessage: "Welcome to Opulence Capital - Your Wealth, Our Priority.",
		CustomPages: []page.CustomPage{
			{
				ID: "p1", Title: "Careers", Slug: "careers", IsPublished: true, Version: 1,
				Sections: []section.Section{
					{ID: "s1", Type: section.TypeHero, Order: 0, Content: section.HeroContent{Title: "Join Our Team"}},
				},
			},
			{
				ID: "p2", Title: "Hidden", Slug: "hidden", IsPublished: false, Version: 1,
			},
		},
	}))

	store := tenant.NewStore(repo, logr.Discard())
	require.NoError(t, store.Load(context.Background()))

	manager, err := cache.NewManager("", time.Minute)
	require.NoError(t, err)
	var generation int64
	store.OnUpdate(func(string) {
		generation++
		_ = manager.Cycle(generation)
	})

	renderer, err := render.NewRenderer(tools.NewEmbedder(), logr.Discard())
	require.NoError(t, err)

	pages := page.NewService(store, logr.Discard())
	handler := NewHandler(pages, renderer, manager, logr.Discard())

	return &fixture{
		server:  New(":0", store, handler, logr.Discard()),
		store:   store,
		manager: manager,
	}
}

func (f *fixture) get(t *testing.T, host, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	f.server.Handler.ServeHTTP(rec, req)
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestServer_Healthz(t *testing.T) {
	f := newFixture(t)
	res, body := f.get(t, "anything.example", "/healthz")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestServer_PublishedPage(t *testing.T) {
	f := newFixture(t)

	res, body := f.get(t, "opulence.com", "/page/careers")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Contains(t, body, "Join Our Team")
	assert.Contains(t, body, "<title>Careers | Opulence Capital</title>")
}

func TestServer_PageServedFromCache(t *testing.T) {
	f := newFixture(t)

	_, first := f.get(t, "opulence.com", "/page/careers")

	// the rendered document is now cached under the current generation
	val, ok, isCurrent, err := f.manager.Cache("page").Get(context.Background(), "tenant-1:careers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, isCurrent)
	assert.Equal(t, first, val)
}

func TestServer_UnpublishedAndMissingSlugsAre404(t *testing.T) {
	f := newFixture(t)

	for _, slug := range []string{"hidden", "no-such-page"} {
		res, body := f.get(t, "opulence.com", "/page/"+slug)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, slug)
		assert.Contains(t, body, "Page Not Found", slug)
		// 404s carry the tenant chrome
		assert.Contains(t, body, "Opulence Capital", slug)
	}
}

func TestServer_404NotCached(t *testing.T) {
	f := newFixture(t)

	f.get(t, "opulence.com", "/page/no-such-page")

	_, ok, _, err := f.manager.Cache("page").Get(context.Background(), "tenant-1:no-such-page")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServer_UnknownDomain(t *testing.T) {
	f := newFixture(t)
	res, _ := f.get(t, "unknown.example", "/page/careers")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServer_Home(t *testing.T) {
	f := newFixture(t)
	res, body := f.get(t, "opulence.com", "/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Welcome to Opulence Capital - Your Wealth, Our Priority.")
}

func TestServer_ContentChangeCyclesCache(t *testing.T) {
	f := newFixture(t)

	f.get(t, "opulence.com", "/page/careers")
	pageCache := f.manager.Cache("page")

	// commit a content change through the store
	pages, ok := f.store.Pages("tenant-1")
	require.True(t, ok)
	pages[0].Sections[0].Content = section.HeroContent{Title: "We Are Hiring"}
	require.NoError(t, f.store.ReplacePages(context.Background(), "tenant-1", pages))

	// the cached rendering is now a stale-generation entry
	_, ok, isCurrent, err := pageCache.Get(context.Background(), "tenant-1:careers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, isCurrent)

	// the stale document still serves while migration happens
	res, body := f.get(t, "opulence.com", "/page/careers")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Join Our Team")

	// eventually the fresh rendering lands in the current generation
	require.Eventually(t, func() bool {
		val, ok, isCurrent, err := pageCache.Get(context.Background(), "tenant-1:careers")
		return err == nil && ok && isCurrent && val != body
	}, 2*time.Second, 10*time.Millisecond)

	_, body = f.get(t, "opulence.com", "/page/careers")
	assert.Contains(t, body, "We Are Hiring")
}
