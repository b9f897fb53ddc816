package content

// Bundled content. Every page renders fully from these values when the
// content service is unavailable.

var DefaultSiteSettings = SiteSettings{
	SiteName:   "Meridian BPO",
	Tagline:    "Outsourcing that scales with you",
	Email:      "hello@meridianbpo.com",
	Phone:      "+254 700 000 000",
	Address:    "Westlands Business Park, Nairobi, Kenya",
	FooterNote: "Meridian BPO. Customer experience, healthcare operations and training.",
	Social: []SocialLink{
		{Platform: "linkedin", URL: "https://www.linkedin.com/company/meridian-bpo"},
		{Platform: "x", URL: "https://x.com/meridianbpo"},
		{Platform: "facebook", URL: "https://www.facebook.com/meridianbpo"},
	},
	Logo: LocalImage("/static/images/logo.svg", "Meridian BPO"),
}

var DefaultHeroSlides = []HeroSlide{
	{
		Title:    "Customer experience teams that feel in-house",
		Subtitle: "Dedicated multilingual agents, onboarded in weeks and measured on your KPIs.",
		CTAText:  "Talk to our team",
		CTALink:  "/contact",
		Image:    LocalImage("/static/images/hero-cx.jpg", "Agents on a customer support floor"),
	},
	{
		Title:    "Healthcare operations, handled with care",
		Subtitle: "Medical billing, coding and imaging support delivered by certified specialists.",
		CTAText:  "Explore services",
		CTALink:  "/services",
		Image:    LocalImage("/static/images/hero-health.jpg", "Medical imaging specialist at work"),
	},
	{
		Title:    "Train your next workforce with us",
		Subtitle: "Accredited programs in imaging, coding and customer service.",
		CTAText:  "View programs",
		CTALink:  "/training",
		Image:    LocalImage("/static/images/hero-training.jpg", "Trainees in a classroom"),
	},
}

var DefaultMetrics = []Metric{
	{Label: "Agents deployed", Value: "1,200", Suffix: "+"},
	{Label: "Client retention", Value: "96", Suffix: "%"},
	{Label: "Languages supported", Value: "14"},
	{Label: "Average CSAT", Value: "4.8", Suffix: "/5"},
}

var DefaultPartners = []Partner{
	{Name: "Aga Health Network", URL: "https://example.com/aga", Logo: LocalImage("/static/images/partners/aga.svg", "Aga Health Network")},
	{Name: "Savanna Telecom", URL: "https://example.com/savanna", Logo: LocalImage("/static/images/partners/savanna.svg", "Savanna Telecom")},
	{Name: "Lakeview Insurance", URL: "https://example.com/lakeview", Logo: LocalImage("/static/images/partners/lakeview.svg", "Lakeview Insurance")},
	{Name: "Baobab Retail", URL: "https://example.com/baobab", Logo: LocalImage("/static/images/partners/baobab.svg", "Baobab Retail")},
}

var DefaultServices = []Service{
	{
		Title:       "Customer Experience",
		Slug:        "customer-experience",
		Description: "Omnichannel support across voice, chat, e-mail and social, staffed around the clock.",
		Icon:        "headset",
		Features:    []string{"24/7 coverage", "Multilingual agents", "Quality assurance on every interaction"},
		Image:       LocalImage("/static/images/services/cx.jpg", "Customer experience"),
	},
	{
		Title:       "Medical Billing & Coding",
		Slug:        "medical-billing-coding",
		Description: "Certified coders and billers who shorten your revenue cycle and cut denials.",
		Icon:        "file-medical",
		Features:    []string{"ICD-10 and CPT coding", "Claims submission and follow-up", "HIPAA-aligned processes"},
		Image:       LocalImage("/static/images/services/billing.jpg", "Medical billing"),
	},
	{
		Title:       "Medical Imaging Support",
		Slug:        "medical-imaging-support",
		Description: "Trained imaging assistants for scheduling, pre-reads and image quality review.",
		Icon:        "scan",
		Features:    []string{"MRI and CT workflow support", "Image quality checks", "Radiology scheduling"},
		Image:       LocalImage("/static/images/services/imaging.jpg", "Medical imaging support"),
	},
	{
		Title:       "Back-Office Operations",
		Slug:        "back-office",
		Description: "Data entry, document processing and finance operations run to agreed SLAs.",
		Icon:        "briefcase",
		Features:    []string{"Document processing", "Accounts payable and receivable", "Data validation"},
		Image:       LocalImage("/static/images/services/back-office.jpg", "Back-office operations"),
	},
}

var DefaultTestimonials = []Testimonial{
	{
		Quote:   "Meridian took over our tier-one support in six weeks and our CSAT went up in the first month.",
		Author:  "Grace Wanjiku",
		Role:    "Head of Customer Care",
		Company: "Savanna Telecom",
	},
	{
		Quote:   "Their coding team cut our claim denials by a third. It feels like an extension of our billing office.",
		Author:  "Dr. Samuel Okafor",
		Role:    "Revenue Cycle Director",
		Company: "Aga Health Network",
	},
}

var DefaultCaseStudies = []CaseStudy{
	{
		Title:       "Scaling telecom support for a national launch",
		Slug:        "telecom-support-scale-up",
		Client:      "Savanna Telecom",
		Industry:    "Telecommunications",
		Summary:     "A 150-seat voice and chat team stood up in six weeks for a nationwide 5G launch.",
		Challenge:   "Call volumes were forecast to triple during launch month with no internal capacity to absorb them.",
		Solution:    "We recruited and trained 150 agents, built launch-specific knowledge bases and ran a dedicated war room.",
		Results:     []string{"92% first-contact resolution", "Average handle time down 18%", "CSAT of 4.7/5 during launch"},
		PublishedAt: "2024-03-12",
		Image:       LocalImage("/static/images/case-studies/telecom.jpg", "Telecom support floor"),
	},
	{
		Title:       "Reducing claim denials for a hospital network",
		Slug:        "hospital-claim-denials",
		Client:      "Aga Health Network",
		Industry:    "Healthcare",
		Summary:     "Certified coders reduced denial rates by 34% across four hospitals.",
		Challenge:   "A growing backlog of uncoded encounters and a denial rate above 12%.",
		Solution:    "A dedicated coding pod with second-level audits and weekly denial root-cause reviews.",
		Results:     []string{"Denials down 34%", "Coding backlog cleared in 30 days", "Days in A/R reduced by 9"},
		PublishedAt: "2024-01-28",
		Image:       LocalImage("/static/images/case-studies/healthcare.jpg", "Hospital billing team"),
	},
}

var DefaultInsights = []Insight{
	{
		Title:       "Five questions to ask before outsourcing customer support",
		Slug:        "five-questions-outsourcing-support",
		Type:        InsightBlog,
		Excerpt:     "A short checklist for operations leaders weighing an outsourcing partner.",
		Author:      "Meridian Editorial",
		PublishedAt: "2024-04-02",
		Image:       LocalImage("/static/images/insights/checklist.jpg", "Checklist"),
	},
	{
		Title:       "The state of healthcare revenue cycle outsourcing",
		Slug:        "healthcare-rcm-outsourcing-report",
		Type:        InsightWhitepaper,
		Excerpt:     "Benchmarks on denial rates, coding accuracy and turnaround from our client base.",
		Author:      "Meridian Research",
		PublishedAt: "2024-02-15",
		Image:       LocalImage("/static/images/insights/report.jpg", "Report cover"),
	},
	{
		Title:       "Meridian opens a second delivery centre in Kisumu",
		Slug:        "kisumu-delivery-centre",
		Type:        InsightNews,
		Excerpt:     "The new site adds 400 seats and a dedicated medical imaging training lab.",
		Author:      "Meridian Communications",
		PublishedAt: "2024-05-20",
		Image:       LocalImage("/static/images/insights/kisumu.jpg", "Kisumu delivery centre"),
	},
}

var DefaultJobListings = []JobListing{
	{
		Title:          "Customer Experience Agent (French)",
		Slug:           "cx-agent-french",
		Department:     "Operations",
		Location:       "Nairobi, Kenya",
		EmploymentType: "Full-time",
		Description:    "Handle inbound voice and chat contacts for a European retail client.",
		Requirements:   []string{"Fluent French and English", "One year of contact centre experience", "Comfortable with rotating shifts"},
	},
	{
		Title:          "Certified Medical Coder",
		Slug:           "certified-medical-coder",
		Department:     "Healthcare Operations",
		Location:       "Remote (Kenya)",
		EmploymentType: "Full-time",
		Description:    "Code inpatient and outpatient encounters for US hospital clients.",
		Requirements:   []string{"CPC or CCS certification", "ICD-10-CM and CPT proficiency", "95% accuracy on audits"},
	},
	{
		Title:          "Team Lead, Back-Office Operations",
		Slug:           "team-lead-back-office",
		Department:     "Operations",
		Location:       "Kisumu, Kenya",
		EmploymentType: "Full-time",
		Description:    "Lead a team of 15 processing specialists and own SLA reporting.",
		Requirements:   []string{"Two years of team leadership", "Strong Excel skills", "Experience with SLA reporting"},
	},
}

var DefaultTrainingPrograms = []TrainingProgram{
	{
		Title:       "MRI Imaging Training",
		Slug:        "mri-imaging-training",
		Category:    "Medical Imaging",
		Duration:    "12 weeks",
		Format:      "hybrid",
		Description: "MRI physics, safety, patient positioning and protocol selection with supervised lab hours.",
		Price:       "KES 180,000",
		Image:       LocalImage("/static/images/training/mri.jpg", "MRI scanner"),
	},
	{
		Title:       "CT Scan Technology",
		Slug:        "ct-scan-technology",
		Category:    "Medical Imaging",
		Duration:    "10 weeks",
		Format:      "onsite",
		Description: "CT fundamentals, contrast administration support and image quality review.",
		Price:       "KES 150,000",
		Image:       LocalImage("/static/images/training/ct.jpg", "CT scanner"),
	},
	{
		Title:       "Medical Coding Certification Prep",
		Slug:        "medical-coding-certification",
		Category:    "Healthcare Operations",
		Duration:    "8 weeks",
		Format:      "online",
		Description: "ICD-10-CM, CPT and HCPCS coding with exam-style practice for the CPC credential.",
		Price:       "KES 90,000",
		Image:       LocalImage("/static/images/training/coding.jpg", "Medical coding"),
	},
	{
		Title:       "Customer Service Excellence",
		Slug:        "customer-service-excellence",
		Category:    "Customer Experience",
		Duration:    "4 weeks",
		Format:      "online",
		Description: "Communication, de-escalation and CRM skills for new contact centre agents.",
		Price:       "KES 35,000",
		Image:       LocalImage("/static/images/training/cx.jpg", "Customer service training"),
	},
}

var DefaultTeamMembers = []TeamMember{
	{
		Name:     "Amina Njoroge",
		Role:     "Chief Executive Officer",
		Bio:      "Fifteen years building contact centre operations across East Africa.",
		LinkedIn: "https://www.linkedin.com/in/amina-njoroge",
		Photo:    LocalImage("/static/images/team/amina.jpg", "Amina Njoroge"),
	},
	{
		Name:     "David Mutua",
		Role:     "Chief Operating Officer",
		Bio:      "Runs delivery for our customer experience and back-office programs.",
		LinkedIn: "https://www.linkedin.com/in/david-mutua",
		Photo:    LocalImage("/static/images/team/david.jpg", "David Mutua"),
	},
	{
		Name:     "Dr. Faith Achieng",
		Role:     "Director, Healthcare Services",
		Bio:      "Radiographer turned operations leader; oversees imaging and coding teams.",
		LinkedIn: "https://www.linkedin.com/in/faith-achieng",
		Photo:    LocalImage("/static/images/team/faith.jpg", "Dr. Faith Achieng"),
	},
}

var DefaultImpactStory = ImpactStory{
	Title:    "Creating careers, not just jobs",
	Subtitle: "Our impact in the communities we hire from",
	Body:     "Since 2015 we have trained thousands of young professionals in customer experience and healthcare operations. Most of our team leads started as agents, and our training academy places graduates with employers across the region.",
	Stats: []Metric{
		{Label: "People trained", Value: "4,500", Suffix: "+"},
		{Label: "First-time jobs created", Value: "2,100", Suffix: "+"},
		{Label: "Women in leadership", Value: "58", Suffix: "%"},
	},
	Image: LocalImage("/static/images/impact.jpg", "Graduation day at the Meridian academy"),
}
