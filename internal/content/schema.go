package content

import "strings"

// Schema is implemented by every content type. valid rejects malformed
// records; mergeOver fills absent fields from def; withImages resolves
// media fields.
type Schema[T any] interface {
	valid() bool
	mergeOver(def T) T
	withImages(mediaBase, placeholder string) T
}

func pick(live, def string) string {
	if strings.TrimSpace(live) != "" {
		return live
	}
	return def
}

func pickStrings(live, def []string) []string {
	for _, s := range live {
		if strings.TrimSpace(s) != "" {
			return live
		}
	}
	return def
}

func pickImage(live, def Image) Image {
	if live.Present() {
		return live
	}
	return def
}

type HeroSlide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
	Image    Image  `json:"image"`
}

func (h HeroSlide) valid() bool { return strings.TrimSpace(h.Title) != "" }

func (h HeroSlide) mergeOver(def HeroSlide) HeroSlide {
	return HeroSlide{
		Title:    pick(h.Title, def.Title),
		Subtitle: pick(h.Subtitle, def.Subtitle),
		CTAText:  pick(h.CTAText, def.CTAText),
		CTALink:  pick(h.CTALink, def.CTALink),
		Image:    pickImage(h.Image, def.Image),
	}
}

func (h HeroSlide) withImages(base, placeholder string) HeroSlide {
	h.Image = h.Image.resolved(base, placeholder)
	return h
}

type Service struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Image       Image    `json:"image"`
}

func (s Service) valid() bool { return strings.TrimSpace(s.Title) != "" }

func (s Service) mergeOver(def Service) Service {
	return Service{
		Title:       pick(s.Title, def.Title),
		Slug:        pick(s.Slug, def.Slug),
		Description: pick(s.Description, def.Description),
		Icon:        pick(s.Icon, def.Icon),
		Features:    pickStrings(s.Features, def.Features),
		Image:       pickImage(s.Image, def.Image),
	}
}

func (s Service) withImages(base, placeholder string) Service {
	s.Image = s.Image.resolved(base, placeholder)
	return s
}

type CaseStudy struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Client      string   `json:"client"`
	Industry    string   `json:"industry"`
	Summary     string   `json:"summary"`
	Challenge   string   `json:"challenge"`
	Solution    string   `json:"solution"`
	Results     []string `json:"results"`
	PublishedAt string   `json:"publishedAt"`
	Image       Image    `json:"image"`
}

func (c CaseStudy) valid() bool {
	return strings.TrimSpace(c.Title) != "" && strings.TrimSpace(c.Slug) != ""
}

func (c CaseStudy) mergeOver(def CaseStudy) CaseStudy {
	return CaseStudy{
		Title:       pick(c.Title, def.Title),
		Slug:        pick(c.Slug, def.Slug),
		Client:      pick(c.Client, def.Client),
		Industry:    pick(c.Industry, def.Industry),
		Summary:     pick(c.Summary, def.Summary),
		Challenge:   pick(c.Challenge, def.Challenge),
		Solution:    pick(c.Solution, def.Solution),
		Results:     pickStrings(c.Results, def.Results),
		PublishedAt: pick(c.PublishedAt, def.PublishedAt),
		Image:       pickImage(c.Image, def.Image),
	}
}

func (c CaseStudy) withImages(base, placeholder string) CaseStudy {
	c.Image = c.Image.resolved(base, placeholder)
	return c
}

type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
	Photo    Image  `json:"photo"`
}

func (m TeamMember) valid() bool { return strings.TrimSpace(m.Name) != "" }

func (m TeamMember) mergeOver(def TeamMember) TeamMember {
	return TeamMember{
		Name:     pick(m.Name, def.Name),
		Role:     pick(m.Role, def.Role),
		Bio:      pick(m.Bio, def.Bio),
		LinkedIn: pick(m.LinkedIn, def.LinkedIn),
		Photo:    pickImage(m.Photo, def.Photo),
	}
}

func (m TeamMember) withImages(base, placeholder string) TeamMember {
	m.Photo = m.Photo.resolved(base, placeholder)
	return m
}

// Insight types accepted by the insights filter.
const (
	InsightBlog       = "blog"
	InsightWhitepaper = "whitepaper"
	InsightNews       = "news"
)

type Insight struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Type        string `json:"type"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
	Image       Image  `json:"image"`
}

func (i Insight) valid() bool { return strings.TrimSpace(i.Title) != "" }

func (i Insight) mergeOver(def Insight) Insight {
	return Insight{
		Title:       pick(i.Title, def.Title),
		Slug:        pick(i.Slug, def.Slug),
		Type:        pick(i.Type, def.Type),
		Excerpt:     pick(i.Excerpt, def.Excerpt),
		Author:      pick(i.Author, def.Author),
		PublishedAt: pick(i.PublishedAt, def.PublishedAt),
		Image:       pickImage(i.Image, def.Image),
	}
}

func (i Insight) withImages(base, placeholder string) Insight {
	i.Image = i.Image.resolved(base, placeholder)
	return i
}

type JobListing struct {
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
}

func (j JobListing) valid() bool { return strings.TrimSpace(j.Title) != "" }

func (j JobListing) mergeOver(def JobListing) JobListing {
	return JobListing{
		Title:          pick(j.Title, def.Title),
		Slug:           pick(j.Slug, def.Slug),
		Department:     pick(j.Department, def.Department),
		Location:       pick(j.Location, def.Location),
		EmploymentType: pick(j.EmploymentType, def.EmploymentType),
		Description:    pick(j.Description, def.Description),
		Requirements:   pickStrings(j.Requirements, def.Requirements),
	}
}

func (j JobListing) withImages(string, string) JobListing { return j }

type TrainingProgram struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Format      string `json:"format"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       Image  `json:"image"`
}

func (p TrainingProgram) valid() bool { return strings.TrimSpace(p.Title) != "" }

func (p TrainingProgram) mergeOver(def TrainingProgram) TrainingProgram {
	return TrainingProgram{
		Title:       pick(p.Title, def.Title),
		Slug:        pick(p.Slug, def.Slug),
		Category:    pick(p.Category, def.Category),
		Duration:    pick(p.Duration, def.Duration),
		Format:      pick(p.Format, def.Format),
		Description: pick(p.Description, def.Description),
		Price:       pick(p.Price, def.Price),
		Image:       pickImage(p.Image, def.Image),
	}
}

func (p TrainingProgram) withImages(base, placeholder string) TrainingProgram {
	p.Image = p.Image.resolved(base, placeholder)
	return p
}

type Metric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Suffix string `json:"suffix"`
}

func (m Metric) valid() bool {
	return strings.TrimSpace(m.Label) != "" && strings.TrimSpace(m.Value) != ""
}

func (m Metric) mergeOver(def Metric) Metric {
	return Metric{
		Label:  pick(m.Label, def.Label),
		Value:  pick(m.Value, def.Value),
		Suffix: pick(m.Suffix, def.Suffix),
	}
}

func (m Metric) withImages(string, string) Metric { return m }

type Partner struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo Image  `json:"logo"`
}

func (p Partner) valid() bool { return strings.TrimSpace(p.Name) != "" }

func (p Partner) mergeOver(def Partner) Partner {
	return Partner{
		Name: pick(p.Name, def.Name),
		URL:  pick(p.URL, def.URL),
		Logo: pickImage(p.Logo, def.Logo),
	}
}

func (p Partner) withImages(base, placeholder string) Partner {
	p.Logo = p.Logo.resolved(base, placeholder)
	return p
}

type Testimonial struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

func (t Testimonial) valid() bool {
	return strings.TrimSpace(t.Quote) != "" && strings.TrimSpace(t.Author) != ""
}

func (t Testimonial) mergeOver(def Testimonial) Testimonial {
	return Testimonial{
		Quote:   pick(t.Quote, def.Quote),
		Author:  pick(t.Author, def.Author),
		Role:    pick(t.Role, def.Role),
		Company: pick(t.Company, def.Company),
	}
}

func (t Testimonial) withImages(string, string) Testimonial { return t }

type ImpactStory struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Body     string   `json:"body"`
	Stats    []Metric `json:"stats"`
	Image    Image    `json:"image"`
}

func (s ImpactStory) valid() bool { return strings.TrimSpace(s.Title) != "" }

func (s ImpactStory) mergeOver(def ImpactStory) ImpactStory {
	stats := make([]Metric, 0, len(s.Stats))
	for _, m := range s.Stats {
		if m.valid() {
			stats = append(stats, m)
		}
	}
	if len(stats) == 0 {
		stats = def.Stats
	}
	return ImpactStory{
		Title:    pick(s.Title, def.Title),
		Subtitle: pick(s.Subtitle, def.Subtitle),
		Body:     pick(s.Body, def.Body),
		Stats:    stats,
		Image:    pickImage(s.Image, def.Image),
	}
}

func (s ImpactStory) withImages(base, placeholder string) ImpactStory {
	s.Image = s.Image.resolved(base, placeholder)
	return s
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type SiteSettings struct {
	SiteName   string       `json:"siteName"`
	Tagline    string       `json:"tagline"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Address    string       `json:"address"`
	FooterNote string       `json:"footerNote"`
	Social     []SocialLink `json:"social"`
	Logo       Image        `json:"logo"`
}

func (s SiteSettings) valid() bool {
	return strings.TrimSpace(s.SiteName) != "" || strings.TrimSpace(s.Email) != ""
}

func (s SiteSettings) mergeOver(def SiteSettings) SiteSettings {
	social := make([]SocialLink, 0, len(s.Social))
	for _, l := range s.Social {
		if strings.TrimSpace(l.URL) != "" {
			social = append(social, l)
		}
	}
	if len(social) == 0 {
		social = def.Social
	}
	return SiteSettings{
		SiteName:   pick(s.SiteName, def.SiteName),
		Tagline:    pick(s.Tagline, def.Tagline),
		Email:      pick(s.Email, def.Email),
		Phone:      pick(s.Phone, def.Phone),
		Address:    pick(s.Address, def.Address),
		FooterNote: pick(s.FooterNote, def.FooterNote),
		Social:     social,
		Logo:       pickImage(s.Logo, def.Logo),
	}
}

func (s SiteSettings) withImages(base, placeholder string) SiteSettings {
	s.Logo = s.Logo.resolved(base, placeholder)
	return s
}
