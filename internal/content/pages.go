package content

import (
	"context"

	"bpo-website/internal/cms"
)

// Collections on the content service.
const (
	CollectionHeroSlides       = "hero-slides"
	CollectionMetrics          = "metrics"
	CollectionPartners         = "partners"
	CollectionServices         = "services"
	CollectionTestimonials     = "testimonials"
	CollectionCaseStudies      = "case-studies"
	CollectionInsights         = "insights"
	CollectionJobListings      = "job-listings"
	CollectionTrainingPrograms = "training-programs"
	CollectionTeamMembers      = "team-members"
	CollectionImpactStory      = "impact-story"
	CollectionSiteSettings     = "site-setting"
)

type HomePage struct {
	Hero         List[HeroSlide]
	Metrics      List[Metric]
	Partners     List[Partner]
	Services     List[Service]
	Testimonials List[Testimonial]
	Settings     Resolved[SiteSettings]
}

// Live reports whether the primary (hero) section came from the service.
func (p HomePage) Live() bool { return p.Hero.Live() }

func (r *Resolver) Home(ctx context.Context) HomePage {
	var p HomePage
	Parallel(ctx,
		func(ctx context.Context) {
			p.Hero = ResolveList(ctx, r, cms.Request{Collection: CollectionHeroSlides, Populate: []string{"*"}, Sort: []string{"order:asc"}}, DefaultHeroSlides, UseDefaultsWhenEmpty)
		},
		func(ctx context.Context) {
			p.Metrics = ResolveList(ctx, r, cms.Request{Collection: CollectionMetrics}, DefaultMetrics, UseDefaultsWhenEmpty)
		},
		func(ctx context.Context) {
			p.Partners = ResolveList(ctx, r, cms.Request{Collection: CollectionPartners, Populate: []string{"logo"}}, DefaultPartners, UseDefaultsWhenEmpty)
		},
		func(ctx context.Context) {
			p.Services = ResolveList(ctx, r, cms.Request{Collection: CollectionServices, Populate: []string{"*"}}, DefaultServices, UseDefaultsWhenEmpty)
		},
		func(ctx context.Context) {
			p.Testimonials = ResolveList(ctx, r, cms.Request{Collection: CollectionTestimonials}, DefaultTestimonials, UseDefaultsWhenEmpty)
		},
		func(ctx context.Context) {
			p.Settings = r.SiteSettings(ctx)
		},
	)
	return p
}

type ServicesPage struct {
	Services List[Service]
	Settings Resolved[SiteSettings]
}

func (p ServicesPage) Live() bool { return p.Services.Live() }

func (r *Resolver) Services(ctx context.Context) ServicesPage {
	var p ServicesPage
	Parallel(ctx,
		func(ctx context.Context) {
			p.Services = ResolveList(ctx, r, cms.Request{Collection: CollectionServices, Populate: []string{"*"}}, DefaultServices, ShowEmptyState)
		},
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

type CaseStudiesPage struct {
	CaseStudies List[CaseStudy]
	Settings    Resolved[SiteSettings]
}

func (p CaseStudiesPage) Live() bool { return p.CaseStudies.Live() }

func (r *Resolver) CaseStudies(ctx context.Context) CaseStudiesPage {
	var p CaseStudiesPage
	Parallel(ctx,
		func(ctx context.Context) {
			p.CaseStudies = ResolveList(ctx, r, cms.Request{Collection: CollectionCaseStudies, Populate: []string{"*"}, Sort: []string{"publishedAt:desc"}}, DefaultCaseStudies, ShowEmptyState)
		},
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

type CaseStudyPage struct {
	CaseStudy Resolved[CaseStudy]
	Found     bool
	Settings  Resolved[SiteSettings]
}

func (p CaseStudyPage) Live() bool { return p.CaseStudy.Live }

// CaseStudy resolves one case study by slug. When the service is down the
// bundled case study with the same slug is used; when the service answers
// without a match the page is not found.
func (r *Resolver) CaseStudy(ctx context.Context, slug string) CaseStudyPage {
	var p CaseStudyPage
	Parallel(ctx,
		func(ctx context.Context) {
			req := cms.Request{Collection: CollectionCaseStudies, Filters: map[string]string{"slug": slug}, Populate: []string{"*"}}
			res := ResolveOne(ctx, r, req, CaseStudy{})
			if res.Live {
				p.CaseStudy = res
				p.Found = res.Value.valid()
				return
			}

			for _, cs := range DefaultCaseStudies {
				if cs.Slug == slug {
					p.CaseStudy = Resolved[CaseStudy]{Value: cs.withImages(r.mediaBase, r.placeholder)}
					p.Found = true
					return
				}
			}
		},
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

type InsightsPage struct {
	Type     string
	Insights List[Insight]
	Settings Resolved[SiteSettings]
}

func (p InsightsPage) Live() bool { return p.Insights.Live() }

// ValidInsightType reports whether t is a known insight type or empty.
func ValidInsightType(t string) bool {
	switch t {
	case "", InsightBlog, InsightWhitepaper, InsightNews:
		return true
	}
	return false
}

func (r *Resolver) Insights(ctx context.Context, insightType string) InsightsPage {
	p := InsightsPage{Type: insightType}
	Parallel(ctx,
		func(ctx context.Context) { p.Insights = r.InsightList(ctx, insightType) },
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

// InsightList resolves insights, optionally filtered by type.
func (r *Resolver) InsightList(ctx context.Context, insightType string) List[Insight] {
	req := cms.Request{Collection: CollectionInsights, Populate: []string{"image"}, Sort: []string{"publishedAt:desc"}}
	def := DefaultInsights
	if insightType != "" {
		req.Filters = map[string]string{"type": insightType}
		def = make([]Insight, 0, len(DefaultInsights))
		for _, in := range DefaultInsights {
			if in.Type == insightType {
				def = append(def, in)
			}
		}
	}
	return ResolveList(ctx, r, req, def, ShowEmptyState)
}

type CareersPage struct {
	Jobs     List[JobListing]
	Settings Resolved[SiteSettings]
}

func (p CareersPage) Live() bool { return p.Jobs.Live() }

func (r *Resolver) Careers(ctx context.Context) CareersPage {
	var p CareersPage
	Parallel(ctx,
		func(ctx context.Context) {
			p.Jobs = ResolveList(ctx, r, cms.Request{Collection: CollectionJobListings, Sort: []string{"createdAt:desc"}}, DefaultJobListings, ShowEmptyState)
		},
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

type TrainingPage struct {
	Programs List[TrainingProgram]
	Settings Resolved[SiteSettings]
}

func (p TrainingPage) Live() bool { return p.Programs.Live() }

func (r *Resolver) Training(ctx context.Context) TrainingPage {
	var p TrainingPage
	Parallel(ctx,
		func(ctx context.Context) { p.Programs = r.TrainingPrograms(ctx) },
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

func (r *Resolver) TrainingPrograms(ctx context.Context) List[TrainingProgram] {
	req := cms.Request{Collection: CollectionTrainingPrograms, Populate: []string{"image"}}
	return ResolveList(ctx, r, req, DefaultTrainingPrograms, ShowEmptyState)
}

type AboutPage struct {
	Story    Resolved[ImpactStory]
	Team     List[TeamMember]
	Settings Resolved[SiteSettings]
}

func (p AboutPage) Live() bool { return p.Story.Live }

func (r *Resolver) About(ctx context.Context) AboutPage {
	var p AboutPage
	Parallel(ctx,
		func(ctx context.Context) { p.Story = r.ImpactStory(ctx) },
		func(ctx context.Context) {
			p.Team = ResolveList(ctx, r, cms.Request{Collection: CollectionTeamMembers, Populate: []string{"photo"}}, DefaultTeamMembers, UseDefaultsWhenEmpty)
		},
		func(ctx context.Context) { p.Settings = r.SiteSettings(ctx) },
	)
	return p
}

func (r *Resolver) ImpactStory(ctx context.Context) Resolved[ImpactStory] {
	req := cms.Request{Collection: CollectionImpactStory, Populate: []string{"*"}}
	return ResolveOne(ctx, r, req, DefaultImpactStory)
}

func (r *Resolver) SiteSettings(ctx context.Context) Resolved[SiteSettings] {
	req := cms.Request{Collection: CollectionSiteSettings, Populate: []string{"*"}}
	return ResolveOne(ctx, r, req, DefaultSiteSettings)
}

type ContactPage struct {
	Settings Resolved[SiteSettings]
}

func (p ContactPage) Live() bool { return p.Settings.Live }

func (r *Resolver) Contact(ctx context.Context) ContactPage {
	return ContactPage{Settings: r.SiteSettings(ctx)}
}
