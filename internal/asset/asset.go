// Package asset manages a tenant's media library: uploads with content
// sniffing, listing, and reference-checked deletion.
package asset

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/advisorhq/web/internal/tenant"
)

var (
	ErrNotFound   = errors.New("asset not found")
	ErrAssetInUse = errors.New("asset referenced by a page")
)

const sniffLimit = 3072

// Store is the slice of tenant state the asset service needs.
type Store interface {
	Get(tenantID string) (tenant.Tenant, bool)
	ReplaceAssets(ctx context.Context, tenantID string, assets []tenant.MediaAsset) error
}

// Service owns the media library lifecycle. BaseURL is where uploaded
// files are served from, e.g. "/media".
type Service struct {
	store   Store
	baseURL string
	log     logr.Logger
	now     func() time.Time
}

func NewService(store Store, baseURL string, log logr.Logger) *Service {
	return &Service{
		store:   store,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log.WithName("assets"),
		now:     time.Now,
	}
}

// detect sniffs the content type from the reader's head without consuming
// it, returning a reader that still yields the full content.
func detect(r io.Reader) (*mimetype.MIME, io.Reader, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	head, err := br.Peek(sniffLimit)
	if err != nil && err != io.EOF {
		return nil, nil, err
	}
	return mimetype.Detect(head), br, nil
}

// Upload records a new asset at the head of the tenant's library. The
// kind ("image" or "document") comes from sniffing the content, never
// from the file name. The returned asset carries the URL the file will
// be served from; storing the bytes there is the caller's concern.
func (s *Service) Upload(ctx context.Context, tenantID, name string, content io.Reader) (tenant.MediaAsset, error) {
	t, ok := s.store.Get(tenantID)
	if !ok {
		return tenant.MediaAsset{}, fmt.Errorf("tenant %q: %w", tenantID, tenant.ErrNotFound)
	}

	mime, body, err := detect(content)
	if err != nil {
		return tenant.MediaAsset{}, fmt.Errorf("sniffing %q: %w", name, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return tenant.MediaAsset{}, fmt.Errorf("reading %q: %w", name, err)
	}

	kind := "document"
	if strings.HasPrefix(mime.String(), "image/") {
		kind = "image"
	}

	added := tenant.MediaAsset{
		ID:   uuid.NewString(),
		Name: name,
		URL:  s.baseURL + "/" + uuid.NewString() + mime.Extension(),
		Type: kind,
		Date: s.now().Format("2006-01-02"),
		Size: fmt.Sprintf("%.2f MB", float64(len(data))/(1024*1024)),
	}

	assets := append([]tenant.MediaAsset{added}, t.Assets...)
	if err := s.store.ReplaceAssets(ctx, tenantID, assets); err != nil {
		return tenant.MediaAsset{}, err
	}

	s.log.V(1).Info("asset uploaded",
		"tenant", tenantID, "asset", added.ID, "name", name, "mime", mime.String(), "kind", kind)
	return added, nil
}

// List returns the tenant's library, newest first.
func (s *Service) List(tenantID string) ([]tenant.MediaAsset, error) {
	t, ok := s.store.Get(tenantID)
	if !ok {
		return nil, fmt.Errorf("tenant %q: %w", tenantID, tenant.ErrNotFound)
	}
	return t.Assets, nil
}

// Delete removes an asset unless any page section still references its
// URL.
func (s *Service) Delete(ctx context.Context, tenantID, assetID string) error {
	t, ok := s.store.Get(tenantID)
	if !ok {
		return fmt.Errorf("tenant %q: %w", tenantID, tenant.ErrNotFound)
	}

	idx := -1
	for i, a := range t.Assets {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("asset %q: %w", assetID, ErrNotFound)
	}

	if pageID, referenced := referencedBy(t, t.Assets[idx].URL); referenced {
		return fmt.Errorf("asset %q used by page %q: %w", assetID, pageID, ErrAssetInUse)
	}

	assets := append(t.Assets[:idx:idx], t.Assets[idx+1:]...)
	if err := s.store.ReplaceAssets(ctx, tenantID, assets); err != nil {
		return err
	}

	s.log.V(1).Info("asset deleted", "tenant", tenantID, "asset", assetID)
	return nil
}

// referencedBy scans every section's serialized content for the URL.
func referencedBy(t tenant.Tenant, url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, p := range t.CustomPages {
		for _, sec := range p.Sections {
			encoded, err := json.Marshal(sec.Content)
			if err != nil {
				continue
			}
			if strings.Contains(string(encoded), url) {
				return p.ID, true
			}
		}
	}
	return "", false
}
