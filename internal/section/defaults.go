package section

// DefaultContent returns the payload a freshly added section of the given
// type starts with. Every variant yields a record complete enough that the
// renderer produces a finished block with no further input. Unknown types
// return nil.
func DefaultContent(t Type) Content {
	switch t {
	case TypeHero:
		return HeroContent{
			Title:           "Hero Title",
			Subtitle:        "Subtitle goes here",
			ButtonText:      "Learn More",
			ButtonLink:      "#",
			BackgroundColor: "#0f172a",
			TextColor:       "#ffffff",
		}
	case TypeText:
		return TextContent{
			HTML:            "<p>Enter your text here...</p>",
			BackgroundColor: "#ffffff",
			TextColor:       "#374151",
		}
	case TypeImageText:
		return ImageTextContent{
			Title:           "Section Title",
			Text:            "Description content goes here.",
			ImagePosition:   "right",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
		}
	case TypeFeatures:
		return FeaturesContent{
			Items: []FeatureItem{
				{Title: "Feature 1", Description: "Desc"},
				{Title: "Feature 2", Description: "Desc"},
			},
		}
	case TypeCTA:
		return CTAContent{
			Title:           "Ready to get started?",
			ButtonText:      "Contact Us",
			ButtonLink:      "/contact",
			Variant:         "primary",
			BackgroundColor: "#4f46e5",
			TextColor:       "#ffffff",
		}
	case TypeHTML:
		return HTMLContent{HTML: "<div>Raw HTML</div>"}
	case TypeStats:
		return StatsContent{
			Items: []StatItem{
				{Label: "Clients", Value: "1000+"},
				{Label: "AUM", Value: "₹500Cr"},
				{Label: "Years", Value: "10+"},
			},
		}
	case TypeTestimonials:
		return TestimonialsContent{
			Items: []TestimonialItem{
				{Author: "John Doe", Role: "CEO", Quote: "Excellent service!"},
			},
		}
	case TypePricing:
		return PricingContent{
			Plans: []PricingPlan{
				{Name: "Basic", Price: "Free", Features: "Feature 1, Feature 2", ButtonText: "Sign Up"},
			},
		}
	case TypeTeam:
		return TeamContent{
			Members: []TeamMember{
				{Name: "Jane Smith", Role: "Advisor", Bio: "Expert in wealth management."},
			},
		}
	case TypeFAQ:
		return FAQContent{
			Questions: []FAQItem{
				{Question: "How do I start?", Answer: "Just sign up!"},
			},
		}
	case TypeContact:
		return ContactContent{
			Email:    "support@example.com",
			Phone:    "+91 12345 67890",
			Address:  "Mumbai, India",
			ShowForm: true,
		}
	case TypeCalculator:
		return CalculatorContent{
			Title:           "Financial Tools",
			CalculatorType:  "all",
			BackgroundColor: "#ffffff",
			TextColor:       "#374151",
		}
	case TypeMap:
		return MapContent{
			Title:           "Our Location",
			Address:         "Bandra Kurla Complex, Mumbai",
			Height:          "400",
			BackgroundColor: "#ffffff",
			TextColor:       "#374151",
		}
	}
	return nil
}
