// Package seed loads the demo tenants into an empty store so a fresh
// deployment has something to serve.
package seed

import (
	"context"
	"fmt"

	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/section"
	"github.com/advisorhq/web/internal/tenant"
)

// Apply inserts the demo tenants. It refuses to touch a non-empty store.
func Apply(ctx context.Context, store *tenant.Store) error {
	if store.Count() > 0 {
		return fmt.Errorf("store already has %d tenants", store.Count())
	}
	for _, t := range Tenants() {
		if err := store.Set(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// Tenants returns the demo fixtures: a fully configured firm with a
// published page and a minimally configured one.
func Tenants() []tenant.Tenant {
	return []tenant.Tenant{
		{
			ID:             "tenant-1",
			Name:           "Opulence Capital",
			PrimaryColor:   "#1e3a8a",
			SecondaryColor: "#0f172a",
			Domain:         "opulence.com",
			ContactEmail:   "support@opulence.com",
			ContactPhone:   "+91 22 1234 5678",
			Address:        "123 Financial District, Mumbai, India",
			WelcomeMessage: "Welcome to Opulence Capital - Your Wealth, Our Priority.",
			LogoURL:        "https://cdn-icons-png.flaticon.com/512/2503/2503920.png",
			SebiRegNo:      "INA000012345",
			Modules: tenant.Modules{
				Investment:    true,
				Insurance:     true,
				Loans:         true,
				DocumentVault: true,
			},
			Assets: []tenant.MediaAsset{
				{ID: "a1", Name: "office-meeting.jpg", URL: "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80", Type: "image", Date: "2024-03-01", Size: "2.4 MB"},
				{ID: "a2", Name: "hero-bg.jpg", URL: "https://images.unsplash.com/photo-1565514020176-dbf227747023?ixlib=rb-1.2.1&auto=format&fit=crop&w=2000&q=80", Type: "image", Date: "2024-03-05", Size: "3.1 MB"},
				{ID: "a3", Name: "investment-graph.jpg", URL: "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", Type: "image", Date: "2024-03-10", Size: "1.2 MB"},
			},
			HeaderConfig: &tenant.HeaderConfig{
				Navigation: []tenant.NavigationLink{
					{ID: "n1", Label: "Home", Path: "/"},
					{ID: "n2", Label: "About", Path: "/about"},
					{ID: "n3", Label: "Services", Path: "/services"},
					{ID: "n4", Label: "Insights", Path: "/knowledge"},
					{ID: "n5", Label: "Careers", Path: "/page/careers"},
				},
				ShowAuthButton: true,
			},
			FooterConfig: &tenant.FooterConfig{
				Description: "Empowering your financial future with expert guidance and innovative technology.",
				Links: []tenant.NavigationLink{
					{ID: "f1", Label: "About Us", Path: "/about"},
					{ID: "f2", Label: "Our Services", Path: "/services"},
					{ID: "f3", Label: "Insights & Blog", Path: "/knowledge"},
					{ID: "f4", Label: "Financial Calculators", Path: "/calculators"},
				},
				ShowContact:   true,
				CopyrightText: "© 2024 Opulence Capital. All rights reserved.",
			},
			SEO: &page.SeoConfig{
				Title:       "Opulence Capital - Premier Wealth Management",
				Description: "Expert financial advisory, insurance solutions, and loan services tailored for your growth.",
				Keywords:    "wealth management, insurance, loans, fintech, investment",
				OGImage:     "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?ixlib=rb-1.2.1&auto=format&fit=crop&w=1000&q=80",
			},
			CustomPages: []page.CustomPage{
				{
					ID:          "p1",
					Title:       "Careers",
					Slug:        "careers",
					IsPublished: true,
					LastUpdated: "2024-03-01",
					Version:     1,
					SEO: &page.SeoConfig{
						Title:       "Careers at Opulence",
						Description: "Join our team of financial experts and tech innovators.",
						Keywords:    "jobs, finance careers, hiring",
					},
					Sections: []section.Section{
						{
							ID:    "s1",
							Type:  section.TypeHero,
							Order: 0,
							Content: section.HeroContent{
								Title:           "Join Our Team",
								Subtitle:        "Build the future of wealth management with us.",
								BackgroundImage: "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?ixlib=rb-1.2.1&auto=format&fit=crop&w=2000&q=80",
								ButtonText:      "View Openings",
								ButtonLink:      "#openings",
							},
						},
						{
							ID:    "s2",
							Type:  section.TypeText,
							Order: 1,
							Content: section.TextContent{
								HTML: "<h3>Why work with us?</h3><p>We are looking for talented financial advisors and tech enthusiasts. We offer competitive compensation and a growth-oriented culture.</p>",
							},
						},
						{
							ID:    "s3",
							Type:  section.TypeFeatures,
							Order: 2,
							Content: section.FeaturesContent{
								Items: []section.FeatureItem{
									{Title: "Growth", Description: "Fast track career progression"},
									{Title: "Impact", Description: "Help families secure their future"},
									{Title: "Innovation", Description: "Work with latest fintech tools"},
								},
							},
						},
					},
				},
			},
		},
		{
			ID:             "tenant-2",
			Name:           "WealthGrow Partners",
			PrimaryColor:   "#047857",
			SecondaryColor: "#064e3b",
			Domain:         "wealthgrow.com",
			ContactEmail:   "contact@wealthgrow.com",
			ContactPhone:   "+91 80 9876 5432",
			Address:        "45 Tech Park, Bangalore, India",
			WelcomeMessage: "Growing your future, together.",
			LogoURL:        "https://cdn-icons-png.flaticon.com/512/2830/2830289.png",
			SebiRegNo:      "INA000098765",
			Modules: tenant.Modules{
				Investment:    true,
				Insurance:     false,
				Loans:         true,
				DocumentVault: true,
			},
			CustomPages: []page.CustomPage{},
			Assets:      []tenant.MediaAsset{},
		},
	}
}
