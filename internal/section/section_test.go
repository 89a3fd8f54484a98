package section

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent_AllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			content := DefaultContent(typ)
			require.NotNil(t, content)
			assert.Equal(t, typ, content.Kind())
		})
	}
}

func TestDefaultContent_UnknownType(t *testing.T) {
	assert.Nil(t, DefaultContent(Type("BOGUS")))
}

func TestDefaultContent_HeroIsComplete(t *testing.T) {
	hero := DefaultContent(TypeHero).(HeroContent)
	assert.Equal(t, "Hero Title", hero.Title)
	assert.Equal(t, "Subtitle goes here", hero.Subtitle)
	assert.Equal(t, "Learn More", hero.ButtonText)
	assert.Equal(t, "#", hero.ButtonLink)
	assert.Equal(t, "#0f172a", hero.BackgroundColor)
	assert.Equal(t, "#ffffff", hero.TextColor)
}

func TestDefaultContent_ListVariantsArePopulated(t *testing.T) {
	assert.Len(t, DefaultContent(TypeFeatures).(FeaturesContent).Items, 2)
	assert.Len(t, DefaultContent(TypeFAQ).(FAQContent).Questions, 1)
	assert.Len(t, DefaultContent(TypeStats).(StatsContent).Items, 3)
	assert.Len(t, DefaultContent(TypeTeam).(TeamContent).Members, 1)
	assert.Len(t, DefaultContent(TypePricing).(PricingContent).Plans, 1)
	assert.Len(t, DefaultContent(TypeTestimonials).(TestimonialsContent).Items, 1)
}

func TestClone_Independence(t *testing.T) {
	original := Section{
		ID:    "s1",
		Type:  TypeFeatures,
		Order: 0,
		Content: FeaturesContent{
			Items: []FeatureItem{{Title: "Growth", Description: "Fast track"}},
		},
	}

	copied := original.Clone()
	items := copied.Content.(FeaturesContent).Items
	items[0].Title = "Mutated"

	assert.Equal(t, "Growth", original.Content.(FeaturesContent).Items[0].Title)
}

func TestSection_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		section Section
	}{
		{
			name: "hero",
			section: Section{
				ID:    "s1",
				Type:  TypeHero,
				Order: 0,
				Content: HeroContent{
					Title:      "Join Our Team",
					Subtitle:   "Build the future of wealth management with us.",
					ButtonText: "View Openings",
					ButtonLink: "#openings",
				},
			},
		},
		{
			name: "faq",
			section: Section{
				ID:    "s2",
				Type:  TypeFAQ,
				Order: 1,
				Content: FAQContent{
					Questions: []FAQItem{{Question: "How do I start?", Answer: "Just sign up!"}},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.section)
			require.NoError(t, err)

			var got Section
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.section, got)
		})
	}
}

func TestSection_UnmarshalDiscriminant(t *testing.T) {
	data := []byte(`{"id":"s9","type":"MAP","order":3,"content":{"title":"Visit","address":"Mumbai","height":"450"}}`)

	var got Section
	require.NoError(t, json.Unmarshal(data, &got))

	mc, ok := got.Content.(MapContent)
	require.True(t, ok)
	assert.Equal(t, "Mumbai", mc.Address)
	assert.Equal(t, "450", mc.Height)
}

func TestSection_UnmarshalUnknownType(t *testing.T) {
	var got Section
	err := json.Unmarshal([]byte(`{"id":"x","type":"WIDGET","order":0,"content":{}}`), &got)
	assert.Error(t, err)
}

func TestMerge_ShallowPatch(t *testing.T) {
	content := Content(HeroContent{
		Title:      "Original",
		Subtitle:   "Keep me",
		ButtonText: "Go",
	})

	merged, err := Merge(content, map[string]any{"title": "Patched"})
	require.NoError(t, err)

	hero := merged.(HeroContent)
	assert.Equal(t, "Patched", hero.Title)
	assert.Equal(t, "Keep me", hero.Subtitle)
	assert.Equal(t, "Go", hero.ButtonText)
}

func TestMerge_ListReplacement(t *testing.T) {
	content := Content(FAQContent{
		Questions: []FAQItem{{Question: "old?", Answer: "old."}},
	})

	merged, err := Merge(content, map[string]any{
		"questions": []map[string]any{
			{"q": "new?", "a": "new."},
			{"q": "more?", "a": "more."},
		},
	})
	require.NoError(t, err)

	faq := merged.(FAQContent)
	assert.Len(t, faq.Questions, 2)
	assert.Equal(t, "new?", faq.Questions[0].Question)
}

func TestNormalize(t *testing.T) {
	sections := []Section{
		{ID: "a", Type: TypeHero, Order: 5, Content: DefaultContent(TypeHero)},
		{ID: "b", Type: TypeText, Order: 9, Content: DefaultContent(TypeText)},
		{ID: "c", Type: TypeCTA, Order: 2, Content: DefaultContent(TypeCTA)},
	}

	Normalize(sections)

	for i, s := range sections {
		assert.Equal(t, i, s.Order)
	}
	// positions untouched, only the numbering changed
	assert.Equal(t, "a", sections[0].ID)
	assert.Equal(t, "c", sections[2].ID)
}

func TestSortByOrder_Stable(t *testing.T) {
	sections := []Section{
		{ID: "b", Type: TypeText, Order: 1},
		{ID: "a", Type: TypeHero, Order: 0},
		{ID: "c", Type: TypeFeatures, Order: 1},
	}

	SortByOrder(sections)

	assert.Equal(t, "a", sections[0].ID)
	assert.Equal(t, "b", sections[1].ID)
	assert.Equal(t, "c", sections[2].ID)
}
