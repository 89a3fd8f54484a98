package editor

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/section"
)

type recordingSaver struct {
	saved []page.CustomPage
	err   error
}

func (r *recordingSaver) Save(_ context.Context, _ string, p page.CustomPage) (page.CustomPage, error) {
	if r.err != nil {
		return page.CustomPage{}, r.err
	}
	committed := p.Clone()
	if committed.ID == "" {
		committed.ID = "generated"
		committed.Version = 1
	} else {
		committed.Version++
	}
	r.saved = append(r.saved, committed)
	return committed, nil
}

func openSession(t *testing.T, types ...section.Type) (*Session, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	sess := NewPageSession(saver, "tenant-1", "Careers", "careers", logr.Discard())
	for _, typ := range types {
		_, err := sess.AddSection(typ)
		require.NoError(t, err)
	}
	return sess, saver
}

func ids(t *testing.T, sess *Session) []string {
	t.Helper()
	draft, err := sess.Draft()
	require.NoError(t, err)
	out := make([]string, len(draft.Sections))
	for i, s := range draft.Sections {
		out[i] = s.ID
	}
	return out
}

func assertDenseOrder(t *testing.T, sess *Session) {
	t.Helper()
	draft, err := sess.Draft()
	require.NoError(t, err)
	for i, s := range draft.Sections {
		assert.Equal(t, i, s.Order, "section %d", i)
	}
}

func TestSession_AddSection(t *testing.T) {
	sess, _ := openSession(t)

	added, err := sess.AddSection(section.TypeHero)
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, 0, added.Order)
	assert.Equal(t, "Hero Title", added.Content.(section.HeroContent).Title)

	second, err := sess.AddSection(section.TypeText)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)
	assert.NotEqual(t, added.ID, second.ID)
}

func TestSession_AddSectionUnknownType(t *testing.T) {
	sess, _ := openSession(t)
	_, err := sess.AddSection(section.Type("WIDGET"))
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestSession_RemoveSectionClosesGap(t *testing.T) {
	sess, _ := openSession(t, section.TypeHero, section.TypeText, section.TypeCTA)
	before := ids(t, sess)

	require.NoError(t, sess.RemoveSection(before[1]))

	after := ids(t, sess)
	assert.Equal(t, []string{before[0], before[2]}, after)
	assertDenseOrder(t, sess)

	assert.ErrorIs(t, sess.RemoveSection("missing"), ErrUnknownSection)
}

func TestSession_DuplicateSection(t *testing.T) {
	sess, _ := openSession(t, section.TypeFeatures, section.TypeText)
	before := ids(t, sess)

	require.NoError(t, sess.UpdateContent(before[0], map[string]any{
		"items": []map[string]any{{"title": "Growth", "description": "Fast track"}},
	}))

	copied, err := sess.DuplicateSection(before[0])
	require.NoError(t, err)
	assert.NotEqual(t, before[0], copied.ID)

	after := ids(t, sess)
	assert.Equal(t, []string{before[0], copied.ID, before[1]}, after)
	assertDenseOrder(t, sess)

	// the copy is detached from the original
	require.NoError(t, sess.UpdateContent(copied.ID, map[string]any{
		"items": []map[string]any{{"title": "Changed", "description": "x"}},
	}))
	draft, err := sess.Draft()
	require.NoError(t, err)
	original := draft.FindSection(before[0]).Content.(section.FeaturesContent)
	assert.Equal(t, "Growth", original.Items[0].Title)
}

func TestSession_MoveUpDown(t *testing.T) {
	sess, _ := openSession(t, section.TypeHero, section.TypeText, section.TypeCTA)
	before := ids(t, sess)

	require.NoError(t, sess.MoveUp(before[1]))
	assert.Equal(t, []string{before[1], before[0], before[2]}, ids(t, sess))
	assertDenseOrder(t, sess)

	// first element up is a no-op
	require.NoError(t, sess.MoveUp(before[1]))
	assert.Equal(t, []string{before[1], before[0], before[2]}, ids(t, sess))

	require.NoError(t, sess.MoveDown(before[2]))
	assert.Equal(t, []string{before[1], before[0], before[2]}, ids(t, sess))

	require.NoError(t, sess.MoveDown(before[0]))
	assert.Equal(t, []string{before[1], before[2], before[0]}, ids(t, sess))
	assertDenseOrder(t, sess)
}

func TestSession_Reorder(t *testing.T) {
	sess, _ := openSession(t, section.TypeHero, section.TypeText, section.TypeCTA, section.TypeFAQ)
	before := ids(t, sess)

	require.NoError(t, sess.Reorder(3, 0))
	assert.Equal(t, []string{before[3], before[0], before[1], before[2]}, ids(t, sess))
	assertDenseOrder(t, sess)

	require.NoError(t, sess.Reorder(0, 2))
	assert.Equal(t, []string{before[0], before[1], before[3], before[2]}, ids(t, sess))
	assertDenseOrder(t, sess)

	// out of range and identity are no-ops
	require.NoError(t, sess.Reorder(0, 9))
	require.NoError(t, sess.Reorder(-1, 2))
	require.NoError(t, sess.Reorder(1, 1))
	assert.Equal(t, []string{before[0], before[1], before[3], before[2]}, ids(t, sess))
}

func TestSession_UpdateContentShallowMerge(t *testing.T) {
	sess, _ := openSession(t, section.TypeHero)
	id := ids(t, sess)[0]

	require.NoError(t, sess.UpdateContent(id, map[string]any{"title": "Join Our Team"}))

	draft, err := sess.Draft()
	require.NoError(t, err)
	hero := draft.Sections[0].Content.(section.HeroContent)
	assert.Equal(t, "Join Our Team", hero.Title)
	assert.Equal(t, "Subtitle goes here", hero.Subtitle)

	assert.ErrorIs(t, sess.UpdateContent("missing", map[string]any{"title": "x"}), ErrUnknownSection)
}

func TestSession_SaveCommitsAndContinues(t *testing.T) {
	sess, saver := openSession(t, section.TypeHero)

	require.NoError(t, sess.SetPublished(true))
	require.NoError(t, sess.SetSEO(&page.SeoConfig{Title: "Careers at Opulence"}))

	saved, err := sess.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "generated", saved.ID)
	assert.Equal(t, 1, saved.Version)
	require.Len(t, saver.saved, 1)

	// the session continues on the committed state
	require.NoError(t, sess.SetTitle("Careers 2.0"))
	saved, err = sess.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Version)
	assert.Equal(t, "Careers 2.0", saved.Title)
}

func TestSession_SaveDoesNotTouchStoreBeforeCommit(t *testing.T) {
	sess, saver := openSession(t, section.TypeHero, section.TypeText)

	require.NoError(t, sess.RemoveSection(ids(t, sess)[0]))
	require.NoError(t, sess.SetTitle("Edited"))

	assert.Empty(t, saver.saved)
}

func TestSession_DiscardClosesSession(t *testing.T) {
	sess, saver := openSession(t, section.TypeHero)
	sess.Discard()

	_, err := sess.Draft()
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = sess.AddSection(section.TypeText)
	assert.ErrorIs(t, err, ErrNoDraft)
	assert.ErrorIs(t, sess.RemoveSection("x"), ErrNoDraft)
	_, err = sess.Save(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
	assert.Empty(t, saver.saved)
}

func TestSession_DistinctSessionsDistinctIDs(t *testing.T) {
	seen := map[string]struct{}{}
	for range 5 {
		sess, _ := openSession(t, section.TypeHero)
		for _, id := range ids(t, sess) {
			seen[id] = struct{}{}
		}
	}
	assert.Len(t, seen, 5)
}
