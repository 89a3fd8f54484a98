package section

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes the polymorphic content payload by dispatching on
// the sibling type field, matching the persisted layout
// {id, type, order, content}.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string          `json:"id"`
		Type    Type            `json:"type"`
		Order   int             `json:"order"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	content, err := decodeContent(raw.Type, raw.Content)
	if err != nil {
		return err
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Order = raw.Order
	s.Content = content
	return nil
}

func decodeContent(t Type, data json.RawMessage) (Content, error) {
	if len(data) == 0 || string(data) == "null" {
		return DefaultContent(t), nil
	}

	switch t {
	case TypeHero:
		var c HeroContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeText:
		var c TextContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeImageText:
		var c ImageTextContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeFeatures:
		var c FeaturesContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeCTA:
		var c CTAContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeHTML:
		var c HTMLContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeStats:
		var c StatsContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeTestimonials:
		var c TestimonialsContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypePricing:
		var c PricingContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeTeam:
		var c TeamContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeFAQ:
		var c FAQContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeContact:
		var c ContactContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeCalculator:
		var c CalculatorContent
		err := json.Unmarshal(data, &c)
		return c, err
	case TypeMap:
		var c MapContent
		err := json.Unmarshal(data, &c)
		return c, err
	}
	return nil, fmt.Errorf("unknown section type %q", t)
}

// Merge shallow-merges a partial payload into an existing content record.
// Fields absent from patch keep their current values; the result is decoded
// back into the concrete variant for the content's type.
func Merge(c Content, patch map[string]any) (Content, error) {
	if c == nil {
		return nil, fmt.Errorf("merge into nil content")
	}
	if len(patch) == 0 {
		return c, nil
	}

	encoded, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	merged := map[string]any{}
	if err := json.Unmarshal(encoded, &merged); err != nil {
		return nil, err
	}
	for k, v := range patch {
		merged[k] = v
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}

	return decodeContent(c.Kind(), data)
}
