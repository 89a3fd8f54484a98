package section

// Type identifies one of the closed set of section variants. The render
// and edit dispatch both switch exhaustively over this set.
type Type string

const (
	TypeHero         Type = "HERO"
	TypeText         Type = "TEXT"
	TypeImageText    Type = "IMAGE_TEXT"
	TypeFeatures     Type = "FEATURES"
	TypeCTA          Type = "CTA"
	TypeHTML         Type = "HTML"
	TypeStats        Type = "STATS"
	TypeTestimonials Type = "TESTIMONIALS"
	TypePricing      Type = "PRICING"
	TypeTeam         Type = "TEAM"
	TypeFAQ          Type = "FAQ"
	TypeContact      Type = "CONTACT"
	TypeCalculator   Type = "CALCULATOR"
	TypeMap          Type = "MAP"
)

// Types returns every section variant in declaration order.
func Types() []Type {
	return []Type{
		TypeHero,
		TypeText,
		TypeImageText,
		TypeFeatures,
		TypeCTA,
		TypeHTML,
		TypeStats,
		TypeTestimonials,
		TypePricing,
		TypeTeam,
		TypeFAQ,
		TypeContact,
		TypeCalculator,
		TypeMap,
	}
}

func (t Type) Valid() bool {
	switch t {
	case TypeHero, TypeText, TypeImageText, TypeFeatures, TypeCTA, TypeHTML,
		TypeStats, TypeTestimonials, TypePricing, TypeTeam, TypeFAQ,
		TypeContact, TypeCalculator, TypeMap:
		return true
	}
	return false
}

// Content is the sealed payload union. The concrete type of a section's
// content is determined entirely by the sibling Type field.
type Content interface {
	Kind() Type
	Clone() Content
}

// Section is one visual block of a page. Order is a dense zero-based
// position; Normalize reassigns it after every structural mutation.
type Section struct {
	ID      string  `json:"id"`
	Type    Type    `json:"type"`
	Order   int     `json:"order"`
	Content Content `json:"content"`
}

// Clone returns a deep copy; the copy's content shares no references with
// the original.
func (s Section) Clone() Section {
	out := s
	if s.Content != nil {
		out.Content = s.Content.Clone()
	}
	return out
}

type HeroContent struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ButtonText      string `json:"buttonText"`
	ButtonLink      string `json:"buttonLink"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

func (HeroContent) Kind() Type { return TypeHero }
func (c HeroContent) Clone() Content { return c }

type TextContent struct {
	HTML            string `json:"html"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

func (TextContent) Kind() Type { return TypeText }
func (c TextContent) Clone() Content { return c }

type ImageTextContent struct {
	Title           string `json:"title"`
	Text            string `json:"text"`
	Image           string `json:"image,omitempty"`
	ImagePosition   string `json:"imagePosition"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

func (ImageTextContent) Kind() Type { return TypeImageText }
func (c ImageTextContent) Clone() Content { return c }

type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type FeaturesContent struct {
	Items []FeatureItem `json:"items"`
}

func (FeaturesContent) Kind() Type { return TypeFeatures }

func (c FeaturesContent) Clone() Content {
	out := c
	out.Items = append([]FeatureItem(nil), c.Items...)
	return out
}

type CTAContent struct {
	Title           string `json:"title"`
	ButtonText      string `json:"buttonText"`
	ButtonLink      string `json:"buttonLink"`
	Variant         string `json:"variant,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

func (CTAContent) Kind() Type { return TypeCTA }
func (c CTAContent) Clone() Content { return c }

type HTMLContent struct {
	HTML string `json:"html"`
}

func (HTMLContent) Kind() Type { return TypeHTML }
func (c HTMLContent) Clone() Content { return c }

type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StatsContent struct {
	Items []StatItem `json:"items"`
}

func (StatsContent) Kind() Type { return TypeStats }

func (c StatsContent) Clone() Content {
	out := c
	out.Items = append([]StatItem(nil), c.Items...)
	return out
}

type TestimonialItem struct {
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Image  string `json:"image,omitempty"`
}

type TestimonialsContent struct {
	Items []TestimonialItem `json:"items"`
}

func (TestimonialsContent) Kind() Type { return TypeTestimonials }

func (c TestimonialsContent) Clone() Content {
	out := c
	out.Items = append([]TestimonialItem(nil), c.Items...)
	return out
}

type PricingPlan struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Features   string `json:"features"`
	ButtonText string `json:"buttonText"`
}

type PricingContent struct {
	Plans []PricingPlan `json:"plans"`
}

func (PricingContent) Kind() Type { return TypePricing }

func (c PricingContent) Clone() Content {
	out := c
	out.Plans = append([]PricingPlan(nil), c.Plans...)
	return out
}

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image,omitempty"`
}

type TeamContent struct {
	Members []TeamMember `json:"members"`
}

func (TeamContent) Kind() Type { return TypeTeam }

func (c TeamContent) Clone() Content {
	out := c
	out.Members = append([]TeamMember(nil), c.Members...)
	return out
}

type FAQItem struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

type FAQContent struct {
	Questions []FAQItem `json:"questions"`
}

func (FAQContent) Kind() Type { return TypeFAQ }

func (c FAQContent) Clone() Content {
	out := c
	out.Questions = append([]FAQItem(nil), c.Questions...)
	return out
}

type ContactContent struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	ShowForm bool   `json:"showForm"`
}

func (ContactContent) Kind() Type { return TypeContact }
func (c ContactContent) Clone() Content { return c }

type CalculatorContent struct {
	Title           string `json:"title"`
	CalculatorType  string `json:"calculatorType"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

func (CalculatorContent) Kind() Type { return TypeCalculator }
func (c CalculatorContent) Clone() Content { return c }

type MapContent struct {
	Title           string `json:"title"`
	Address         string `json:"address"`
	Height          string `json:"height"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

func (MapContent) Kind() Type { return TypeMap }
func (c MapContent) Clone() Content { return c }
