package catalog

import "bizmatch/internal/domain"

// definitions es el catalogo completo de modelos de negocio. El orden
// importa: es el desempate para puntajes iguales, asi que los modelos nuevos
// van al final.
var definitions = []domain.BusinessModelDefinition{
	{
		ID:          "affiliate-marketing",
		Name:        "Affiliate Marketing",
		Category:    domain.CategoryContent,
		Description: "Earn commissions by recommending other companies' products through content, reviews and comparison pages.",
		Pros:        []string{"Very low startup cost", "No product or inventory of your own", "Income can become largely passive"},
		Cons:        []string{"Slow to gain traction", "Dependent on partner programs and their terms", "Requires steady content output"},
		Difficulty:  "beginner",
		StartupCost: "$0-$300",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Foundation", Duration: "weeks 1-4", Steps: []string{"Pick a niche you can write about for a year", "Join two or three affiliate programs", "Set up a simple website or channel"}},
			{Title: "Traction", Duration: "months 2-6", Steps: []string{"Publish comparison and review content weekly", "Learn basic search optimization", "Track which pages convert and double down"}},
		},
		InterestTags:    []string{"writing", "finance"},
		RequiresWriting: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitDiscipline:      4.0,
				domain.TraitSocialComfort:   2.5,
				domain.TraitTechComfort:     3.5,
				domain.TraitMotivation:      4.0,
				domain.TraitFocusPreference: 4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitDiscipline:      1.5,
				domain.TraitSocialComfort:   0.5,
				domain.TraitTechComfort:     1.0,
				domain.TraitMotivation:      1.5,
				domain.TraitFocusPreference: 1.0,
			},
		},
	},
	{
		ID:          "blogging",
		Name:        "Niche Blogging",
		Category:    domain.CategoryContent,
		Description: "Build an audience around a focused topic and monetize with ads, sponsorships and digital products.",
		Pros:        []string{"Minimal cost to start", "Compounds over time", "Full creative control"},
		Cons:        []string{"Takes months before meaningful income", "Search-engine dependency", "Consistency is hard to sustain"},
		Difficulty:  "beginner",
		StartupCost: "$0-$200",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Foundation", Duration: "weeks 1-4", Steps: []string{"Choose a niche with evergreen demand", "Launch the blog and publish ten cornerstone posts", "Set up an email capture form"}},
			{Title: "Growth", Duration: "months 2-8", Steps: []string{"Publish on a fixed schedule", "Build backlinks through guest posts", "Add a first monetization channel"}},
		},
		InterestTags:    []string{"writing", "travel", "food", "diy"},
		RequiresWriting: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:      4.0,
				domain.TraitDiscipline:      4.0,
				domain.TraitSocialComfort:   2.5,
				domain.TraitFocusPreference: 4.0,
				domain.TraitMotivation:      4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:      1.5,
				domain.TraitDiscipline:      1.5,
				domain.TraitSocialComfort:   0.5,
				domain.TraitFocusPreference: 1.0,
				domain.TraitMotivation:      1.0,
			},
		},
	},
	{
		ID:          "youtube-channel",
		Name:        "YouTube Channel",
		Category:    domain.CategoryContent,
		Description: "Create video content around a topic and monetize through ads, sponsorships and affiliate links.",
		Pros:        []string{"Huge organic reach", "Multiple revenue streams", "Strong personal-brand flywheel"},
		Cons:        []string{"On-camera presence required", "Editing is time-consuming", "Algorithm volatility"},
		Difficulty:  "intermediate",
		StartupCost: "$100-$1,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Foundation", Duration: "weeks 1-6", Steps: []string{"Define the channel's one-sentence promise", "Publish eight videos to find your format", "Learn basic editing"}},
			{Title: "Growth", Duration: "months 2-12", Steps: []string{"Study retention analytics per video", "Standardize thumbnails and titles", "Reach monetization thresholds"}},
		},
		InterestTags:          []string{"gaming", "fitness", "technology", "travel"},
		RequiresVideo:         true,
		RequiresPublicPersona: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitSocialComfort:      4.0,
				domain.TraitCreativity:         4.5,
				domain.TraitConfidence:         4.0,
				domain.TraitFeedbackResilience: 4.0,
				domain.TraitMotivation:         4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitSocialComfort:      1.5,
				domain.TraitCreativity:         1.5,
				domain.TraitConfidence:         1.0,
				domain.TraitFeedbackResilience: 1.0,
				domain.TraitMotivation:         1.0,
			},
		},
	},
	{
		ID:          "podcasting",
		Name:        "Podcasting",
		Category:    domain.CategoryContent,
		Description: "Host an audio show, grow a loyal listener base and monetize through sponsorships and premium feeds.",
		Pros:        []string{"Low production barrier vs video", "Deep audience loyalty", "Great networking vehicle"},
		Cons:        []string{"Discovery is hard", "Monetization needs scale", "Weekly commitment"},
		Difficulty:  "intermediate",
		StartupCost: "$100-$500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Foundation", Duration: "weeks 1-4", Steps: []string{"Pick a format and cadence", "Record a three-episode launch batch", "Distribute to the major directories"}},
			{Title: "Growth", Duration: "months 2-9", Steps: []string{"Invite guests with existing audiences", "Cross-promote with similar shows", "Pitch sponsors once downloads stabilize"}},
		},
		InterestTags:          []string{"technology", "finance", "fitness"},
		RequiresPublicPersona: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitSocialComfort: 4.0,
				domain.TraitConfidence:    4.0,
				domain.TraitDiscipline:    3.5,
				domain.TraitCreativity:    3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitSocialComfort: 1.5,
				domain.TraitConfidence:    1.0,
				domain.TraitDiscipline:    1.0,
				domain.TraitCreativity:    1.0,
			},
		},
	},
	{
		ID:          "newsletter-publishing",
		Name:        "Paid Newsletter",
		Category:    domain.CategoryContent,
		Description: "Publish a focused email newsletter and convert a fraction of free readers into paying subscribers.",
		Pros:        []string{"Direct relationship with readers", "Predictable recurring revenue", "No platform algorithm in the way"},
		Cons:        []string{"Relentless publishing schedule", "Niche expertise expected", "Churn management"},
		Difficulty:  "intermediate",
		StartupCost: "$0-$200",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Foundation", Duration: "weeks 1-4", Steps: []string{"Define the reader and the job the letter does", "Publish weekly to a free list", "Collect replies to refine the angle"}},
			{Title: "Monetize", Duration: "months 3-9", Steps: []string{"Launch a paid tier with exclusive issues", "Run a founding-member offer", "Automate onboarding sequences"}},
		},
		InterestTags:    []string{"writing", "finance", "technology"},
		RequiresWriting: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitDiscipline:      4.5,
				domain.TraitFocusPreference: 4.5,
				domain.TraitCreativity:      3.5,
				domain.TraitSocialComfort:   2.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitDiscipline:      2.0,
				domain.TraitFocusPreference: 1.5,
				domain.TraitCreativity:      1.0,
				domain.TraitSocialComfort:   0.5,
			},
		},
	},
	{
		ID:          "self-publishing",
		Name:        "Self-Publishing",
		Category:    domain.CategoryContent,
		Description: "Write and publish ebooks or print-on-demand books on marketplaces like Kindle Direct Publishing.",
		Pros:        []string{"Near-zero upfront cost", "Back catalog earns indefinitely", "Total creative independence"},
		Cons:        []string{"Crowded marketplaces", "Marketing falls on the author", "Income per title is usually modest"},
		Difficulty:  "beginner",
		StartupCost: "$0-$500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "First title", Duration: "months 1-3", Steps: []string{"Research a niche with proven buyers", "Write and edit the manuscript", "Commission a professional cover"}},
			{Title: "Catalog", Duration: "months 3-12", Steps: []string{"Publish follow-up titles in the same niche", "Run price promotions", "Build an author email list"}},
		},
		InterestTags:    []string{"writing"},
		RequiresWriting: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:      4.5,
				domain.TraitDiscipline:      4.0,
				domain.TraitFocusPreference: 4.5,
				domain.TraitSocialComfort:   2.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:      1.5,
				domain.TraitDiscipline:      1.5,
				domain.TraitFocusPreference: 1.5,
				domain.TraitSocialComfort:   0.5,
			},
		},
	},
	{
		ID:          "stock-content",
		Name:        "Stock Photos & Video",
		Category:    domain.CategoryContent,
		Description: "Produce photo, video and illustration assets and license them through stock marketplaces.",
		Pros:        []string{"Fully asynchronous work", "Library compounds", "No client interaction"},
		Cons:        []string{"Falling per-asset royalties", "Volume game", "Upfront gear investment"},
		Difficulty:  "beginner",
		StartupCost: "$200-$2,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Portfolio", Duration: "months 1-2", Steps: []string{"Study what the top marketplaces accept", "Shoot and upload 200 assets", "Keyword everything carefully"}},
			{Title: "Scale", Duration: "months 3-12", Steps: []string{"Track which themes sell", "Batch-produce winning themes", "Expand to more marketplaces"}},
		},
		InterestTags: []string{"diy", "travel", "fashion"},
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:      4.5,
				domain.TraitSocialComfort:   1.5,
				domain.TraitDiscipline:      3.5,
				domain.TraitFocusPreference: 4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:      2.0,
				domain.TraitSocialComfort:   1.0,
				domain.TraitDiscipline:      1.0,
				domain.TraitFocusPreference: 1.0,
			},
		},
	},
	{
		ID:          "dropshipping",
		Name:        "Dropshipping Store",
		Category:    domain.CategoryCommerce,
		Description: "Sell physical products online without holding inventory; suppliers ship directly to customers.",
		Pros:        []string{"No inventory risk", "Fast to launch and test", "Location independent"},
		Cons:        []string{"Thin margins", "Ad spend required", "Quality and shipping complaints land on you"},
		Difficulty:  "intermediate",
		StartupCost: "$500-$3,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Validation", Duration: "weeks 1-6", Steps: []string{"Research product niches with ad libraries", "Build a one-product store", "Run small paid-traffic tests"}},
			{Title: "Scale", Duration: "months 2-6", Steps: []string{"Kill losing products fast", "Negotiate with faster suppliers", "Build retargeting funnels"}},
		},
		InterestTags:          []string{"fashion", "fitness", "technology"},
		RequiresPhysicalGoods: true,
		RequiresHighBudget:    true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitRiskTolerance:      4.5,
				domain.TraitAdaptability:       4.5,
				domain.TraitFeedbackResilience: 4.0,
				domain.TraitTechComfort:        3.5,
				domain.TraitDiscipline:         3.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitRiskTolerance:      2.0,
				domain.TraitAdaptability:       1.5,
				domain.TraitFeedbackResilience: 1.0,
				domain.TraitTechComfort:        1.0,
				domain.TraitDiscipline:         0.5,
			},
		},
	},
	{
		ID:          "amazon-fba",
		Name:        "Amazon FBA",
		Category:    domain.CategoryCommerce,
		Description: "Source or manufacture products and sell them through Amazon's fulfillment network.",
		Pros:        []string{"Access to massive buyer intent", "Logistics handled by Amazon", "Scalable once a listing ranks"},
		Cons:        []string{"Significant upfront capital", "Fee pressure on margins", "Platform-policy risk"},
		Difficulty:  "advanced",
		StartupCost: "$2,000-$10,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Sourcing", Duration: "months 1-3", Steps: []string{"Shortlist products with demand data", "Request supplier samples", "Order a first inventory batch"}},
			{Title: "Launch", Duration: "months 3-6", Steps: []string{"Optimize the listing", "Run launch promotions", "Manage reviews and restocks"}},
		},
		InterestTags:          []string{"finance"},
		RequiresPhysicalGoods: true,
		RequiresHighBudget:    true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitRiskTolerance:       4.5,
				domain.TraitDiscipline:          4.0,
				domain.TraitStructurePreference: 4.0,
				domain.TraitResilience:          4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitRiskTolerance:       2.0,
				domain.TraitDiscipline:          1.5,
				domain.TraitStructurePreference: 1.0,
				domain.TraitResilience:          1.0,
			},
		},
	},
	{
		ID:          "print-on-demand",
		Name:        "Print on Demand",
		Category:    domain.CategoryCommerce,
		Description: "Design graphics for apparel and merchandise produced and shipped per order by a printing partner.",
		Pros:        []string{"No inventory", "Design-led, low operations", "Easy to test many niches"},
		Cons:        []string{"Low margin per unit", "Design saturation", "Partner quality varies"},
		Difficulty:  "beginner",
		StartupCost: "$0-$500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Catalog", Duration: "weeks 1-6", Steps: []string{"Pick three niches with passionate buyers", "Upload fifty designs", "Wire up a storefront"}},
			{Title: "Iterate", Duration: "months 2-6", Steps: []string{"Track sales per niche", "Retire dead designs", "Scale winning niches with ads"}},
		},
		InterestTags:          []string{"diy", "fashion", "gaming"},
		RequiresPhysicalGoods: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:    4.5,
				domain.TraitRiskTolerance: 3.0,
				domain.TraitTechComfort:   3.0,
				domain.TraitAdaptability:  3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:    2.0,
				domain.TraitRiskTolerance: 0.5,
				domain.TraitTechComfort:   0.5,
				domain.TraitAdaptability:  1.0,
			},
		},
	},
	{
		ID:          "handmade-ecommerce",
		Name:        "Handmade Goods Store",
		Category:    domain.CategoryCommerce,
		Description: "Craft physical products yourself and sell them on marketplaces like Etsy or at local fairs.",
		Pros:        []string{"Differentiated product", "Premium pricing possible", "Deeply satisfying for makers"},
		Cons:        []string{"Production does not scale", "Shipping and materials logistics", "Seasonal demand swings"},
		Difficulty:  "beginner",
		StartupCost: "$200-$1,500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Launch", Duration: "weeks 1-6", Steps: []string{"Standardize three hero products", "Photograph them well", "Open the marketplace store"}},
			{Title: "Grow", Duration: "months 2-8", Steps: []string{"Collect reviews aggressively", "Batch production runs", "Introduce seasonal collections"}},
		},
		InterestTags:          []string{"diy", "fashion", "food"},
		RequiresPhysicalGoods: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:      4.5,
				domain.TraitDiscipline:      3.5,
				domain.TraitFocusPreference: 4.0,
				domain.TraitTechComfort:     2.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:      2.0,
				domain.TraitDiscipline:      1.0,
				domain.TraitFocusPreference: 1.0,
				domain.TraitTechComfort:     0.5,
			},
		},
	},
	{
		ID:          "saas-product",
		Name:        "SaaS Product",
		Category:    domain.CategoryTech,
		Description: "Build and sell subscription software that solves one painful problem for a defined customer.",
		Pros:        []string{"Recurring revenue", "High margins at scale", "Compounding product value"},
		Cons:        []string{"Long road to first revenue", "Technical depth required", "Support and churn never stop"},
		Difficulty:  "advanced",
		StartupCost: "$100-$5,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Problem", Duration: "months 1-2", Steps: []string{"Interview twenty potential users", "Write the one-page solution spec", "Pre-sell to five of them"}},
			{Title: "Build", Duration: "months 2-6", Steps: []string{"Ship the smallest lovable version", "Onboard design partners", "Instrument activation metrics"}},
			{Title: "Grow", Duration: "months 6-18", Steps: []string{"Pick one acquisition channel and saturate it", "Raise prices", "Automate onboarding"}},
		},
		InterestTags: []string{"technology"},
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitTechComfort:     5.0,
				domain.TraitRiskTolerance:   4.5,
				domain.TraitMotivation:      4.5,
				domain.TraitFocusPreference: 4.5,
				domain.TraitSocialComfort:   2.5,
				domain.TraitResilience:      4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitTechComfort:     2.5,
				domain.TraitRiskTolerance:   1.5,
				domain.TraitMotivation:      1.5,
				domain.TraitFocusPreference: 1.0,
				domain.TraitSocialComfort:   0.5,
				domain.TraitResilience:      1.0,
			},
		},
	},
	{
		ID:          "mobile-apps",
		Name:        "Mobile App Development",
		Category:    domain.CategoryTech,
		Description: "Design, build and monetize your own mobile applications through subscriptions or in-app purchases.",
		Pros:        []string{"Global distribution via app stores", "Portfolio approach spreads risk", "Solo-friendly"},
		Cons:        []string{"Store review gatekeeping", "Discoverability is brutal", "Two platforms to maintain"},
		Difficulty:  "advanced",
		StartupCost: "$100-$2,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "First app", Duration: "months 1-4", Steps: []string{"Pick a small utility with search demand", "Ship to one platform first", "Implement store-page experiments"}},
			{Title: "Portfolio", Duration: "months 4-12", Steps: []string{"Double down or kill based on retention", "Cross-promote between apps", "Add subscription tiers"}},
		},
		InterestTags: []string{"technology", "gaming"},
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitTechComfort:     5.0,
				domain.TraitCreativity:      4.0,
				domain.TraitFocusPreference: 4.5,
				domain.TraitSocialComfort:   2.0,
				domain.TraitRiskTolerance:   4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitTechComfort:     2.5,
				domain.TraitCreativity:      1.0,
				domain.TraitFocusPreference: 1.5,
				domain.TraitSocialComfort:   0.5,
				domain.TraitRiskTolerance:   1.0,
			},
		},
	},
	{
		ID:          "web-development",
		Name:        "Freelance Web Development",
		Category:    domain.CategoryTech,
		Description: "Build websites and web applications for clients as an independent contractor.",
		Pros:        []string{"Immediate income from skills", "High hourly rates with specialization", "Remote by default"},
		Cons:        []string{"Trading time for money", "Client management overhead", "Feast-or-famine pipeline"},
		Difficulty:  "intermediate",
		StartupCost: "$0-$300",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Positioning", Duration: "weeks 1-4", Steps: []string{"Pick a platform or industry niche", "Build three portfolio pieces", "Set productized packages"}},
			{Title: "Pipeline", Duration: "months 2-6", Steps: []string{"Pitch twenty prospects a week", "Collect testimonials", "Raise rates every third project"}},
		},
		InterestTags:        []string{"technology"},
		RequiresDirectSales: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitTechComfort:         5.0,
				domain.TraitDiscipline:          4.0,
				domain.TraitStructurePreference: 3.5,
				domain.TraitSocialComfort:       3.0,
				domain.TraitMotivation:          4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitTechComfort:         2.5,
				domain.TraitDiscipline:          1.0,
				domain.TraitStructurePreference: 0.5,
				domain.TraitSocialComfort:       0.5,
				domain.TraitMotivation:          1.0,
			},
		},
	},
	{
		ID:          "no-code-automation",
		Name:        "No-Code Automation Services",
		Category:    domain.CategoryTech,
		Description: "Build internal tools and workflow automations for small businesses using no-code platforms.",
		Pros:        []string{"Fast-growing demand", "Short delivery cycles", "Lower barrier than full development"},
		Cons:        []string{"Platform lock-in risk", "Commoditization pressure", "Ongoing maintenance requests"},
		Difficulty:  "intermediate",
		StartupCost: "$0-$500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Skills", Duration: "weeks 1-6", Steps: []string{"Master two automation platforms", "Automate your own workflows as demos", "Document case studies"}},
			{Title: "Clients", Duration: "months 2-6", Steps: []string{"Offer fixed-price audits", "Convert audits into retainers", "Systematize delivery templates"}},
		},
		InterestTags:        []string{"technology"},
		RequiresDirectSales: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitTechComfort:         4.5,
				domain.TraitStructurePreference: 4.0,
				domain.TraitAdaptability:        4.0,
				domain.TraitSocialComfort:       3.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitTechComfort:         2.0,
				domain.TraitStructurePreference: 1.0,
				domain.TraitAdaptability:        1.0,
				domain.TraitSocialComfort:       0.5,
			},
		},
	},
	{
		ID:          "freelance-writing",
		Name:        "Freelance Writing",
		Category:    domain.CategoryServices,
		Description: "Write articles, marketing copy or technical content for businesses on a contract basis.",
		Pros:        []string{"Zero startup cost", "Fast path to first dollar", "Skill compounds across niches"},
		Cons:        []string{"Per-word ceilings without specialization", "Deadline pressure", "Client churn"},
		Difficulty:  "beginner",
		StartupCost: "$0-$100",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Portfolio", Duration: "weeks 1-3", Steps: []string{"Pick a profitable niche", "Write three spec samples", "Create profiles on two marketplaces"}},
			{Title: "Clients", Duration: "months 1-4", Steps: []string{"Send ten pitches a day", "Deliver early and ask for referrals", "Move best clients to retainers"}},
		},
		InterestTags:        []string{"writing", "finance", "technology"},
		RequiresWriting:     true,
		RequiresDirectSales: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:          4.0,
				domain.TraitDiscipline:          4.0,
				domain.TraitFeedbackResilience:  4.0,
				domain.TraitStructurePreference: 3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:          1.5,
				domain.TraitDiscipline:          1.5,
				domain.TraitFeedbackResilience:  1.0,
				domain.TraitStructurePreference: 0.5,
			},
		},
	},
	{
		ID:          "graphic-design",
		Name:        "Freelance Graphic Design",
		Category:    domain.CategoryServices,
		Description: "Provide branding, illustration and marketing design services to clients.",
		Pros:        []string{"Portfolio-driven sales", "Recurring brand work", "Creative day-to-day"},
		Cons:        []string{"Subjective feedback loops", "Scope creep", "Stock-template competition"},
		Difficulty:  "intermediate",
		StartupCost: "$100-$1,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Portfolio", Duration: "weeks 1-6", Steps: []string{"Pick a design specialty", "Produce five concept projects", "Publish a portfolio site"}},
			{Title: "Clients", Duration: "months 2-6", Steps: []string{"Pitch agencies for overflow work", "Productize a brand-starter package", "Collect before/after case studies"}},
		},
		InterestTags:        []string{"diy", "fashion", "gaming"},
		RequiresDirectSales: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitCreativity:         5.0,
				domain.TraitFeedbackResilience: 4.0,
				domain.TraitTechComfort:        3.5,
				domain.TraitAdaptability:       3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitCreativity:         2.5,
				domain.TraitFeedbackResilience: 1.5,
				domain.TraitTechComfort:        0.5,
				domain.TraitAdaptability:       0.5,
			},
		},
	},
	{
		ID:          "virtual-assistant",
		Name:        "Virtual Assistant",
		Category:    domain.CategoryServices,
		Description: "Handle administrative, scheduling and inbox work for busy founders and executives remotely.",
		Pros:        []string{"No specialized skills to start", "Steady recurring clients", "Clear scope of work"},
		Cons:        []string{"Hourly-rate ceiling", "Reactive schedule", "Trust takes time to build"},
		Difficulty:  "beginner",
		StartupCost: "$0-$100",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Setup", Duration: "weeks 1-2", Steps: []string{"Define your service menu", "Set up scheduling and invoicing tools", "Join VA placement communities"}},
			{Title: "Clients", Duration: "months 1-3", Steps: []string{"Land two anchor clients", "Document repeatable procedures", "Specialize toward higher-value tasks"}},
		},
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitStructurePreference: 4.5,
				domain.TraitDiscipline:          4.5,
				domain.TraitSocialComfort:       3.5,
				domain.TraitAdaptability:        3.5,
				domain.TraitRiskTolerance:       2.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitStructurePreference: 2.0,
				domain.TraitDiscipline:          1.5,
				domain.TraitSocialComfort:       1.0,
				domain.TraitAdaptability:        0.5,
				domain.TraitRiskTolerance:       1.0,
			},
		},
	},
	{
		ID:          "social-media-management",
		Name:        "Social Media Management",
		Category:    domain.CategoryServices,
		Description: "Run content calendars, posting and community engagement for brands' social accounts.",
		Pros:        []string{"Every business needs it", "Retainer-friendly", "Creative and analytical mix"},
		Cons:        []string{"Always-on expectations", "Platform changes constantly", "Results attribution disputes"},
		Difficulty:  "beginner",
		StartupCost: "$0-$300",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Proof", Duration: "weeks 1-6", Steps: []string{"Grow one demo account in a niche", "Build a content-calendar template", "Package three retainer tiers"}},
			{Title: "Clients", Duration: "months 2-6", Steps: []string{"Pitch local businesses", "Report monthly wins", "Upsell paid-ads management"}},
		},
		InterestTags:          []string{"fashion", "fitness", "food", "travel"},
		RequiresPublicPersona: true,
		RequiresDirectSales:   true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitSocialComfort: 4.5,
				domain.TraitCreativity:    4.0,
				domain.TraitAdaptability:  4.5,
				domain.TraitTechComfort:   3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitSocialComfort: 2.0,
				domain.TraitCreativity:    1.0,
				domain.TraitAdaptability:  1.5,
				domain.TraitTechComfort:   0.5,
			},
		},
	},
	{
		ID:          "marketing-agency",
		Name:        "Marketing Agency",
		Category:    domain.CategoryServices,
		Description: "Build a team that delivers marketing campaigns for clients at scale, from ads to full funnels.",
		Pros:        []string{"High revenue ceiling", "Leverage through a team", "Strategic, varied work"},
		Cons:        []string{"People management is the job", "Client acquisition never stops", "Cash-flow complexity"},
		Difficulty:  "advanced",
		StartupCost: "$1,000-$10,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Solo proof", Duration: "months 1-4", Steps: []string{"Deliver results for three clients yourself", "Document the delivery playbook", "Niche down to one industry"}},
			{Title: "Team", Duration: "months 4-12", Steps: []string{"Hire your first contractor", "Install weekly client reporting", "Build referral partnerships"}},
		},
		InterestTags:          []string{"finance", "technology"},
		RequiresPublicPersona: true,
		RequiresDirectSales:   true,
		RequiresHighBudget:    true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitSocialComfort:      5.0,
				domain.TraitConfidence:         4.5,
				domain.TraitRiskTolerance:      4.0,
				domain.TraitAdaptability:       4.0,
				domain.TraitFeedbackResilience: 4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitSocialComfort:      2.5,
				domain.TraitConfidence:         1.5,
				domain.TraitRiskTolerance:      1.0,
				domain.TraitAdaptability:       1.0,
				domain.TraitFeedbackResilience: 1.0,
			},
		},
	},
	{
		ID:          "consulting",
		Name:        "Independent Consulting",
		Category:    domain.CategoryServices,
		Description: "Advise businesses in your area of professional expertise on a project or retainer basis.",
		Pros:        []string{"Premium day rates", "Leverages existing career experience", "Low overhead"},
		Cons:        []string{"Requires credible expertise", "Sales cycles are long", "Utilization pressure"},
		Difficulty:  "intermediate",
		StartupCost: "$0-$500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Offer", Duration: "weeks 1-4", Steps: []string{"Define the business outcome you sell", "Write two deep case studies", "Set a day rate and hold it"}},
			{Title: "Pipeline", Duration: "months 2-6", Steps: []string{"Reactivate your professional network", "Publish one insight piece a week", "Run paid discovery engagements"}},
		},
		InterestTags:        []string{"finance", "technology"},
		RequiresDirectSales: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitConfidence:          4.5,
				domain.TraitSocialComfort:       4.0,
				domain.TraitStructurePreference: 4.0,
				domain.TraitDiscipline:          4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitConfidence:          2.0,
				domain.TraitSocialComfort:       1.5,
				domain.TraitStructurePreference: 1.0,
				domain.TraitDiscipline:          1.0,
			},
		},
	},
	{
		ID:          "online-courses",
		Name:        "Online Courses",
		Category:    domain.CategoryEducation,
		Description: "Package your knowledge into self-paced video or cohort-based courses and sell them directly.",
		Pros:        []string{"High margins", "Sell the same work repeatedly", "Authority building"},
		Cons:        []string{"Audience needed before launch", "Production effort is front-loaded", "Refund and support load"},
		Difficulty:  "intermediate",
		StartupCost: "$100-$2,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Validate", Duration: "months 1-2", Steps: []string{"Teach the material live to a small group", "Pre-sell the recorded version", "Outline from learner questions"}},
			{Title: "Produce", Duration: "months 2-5", Steps: []string{"Record in short modules", "Launch to your list", "Install an evergreen funnel"}},
		},
		InterestTags:          []string{"teaching", "technology", "fitness", "finance"},
		RequiresVideo:         true,
		RequiresPublicPersona: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitConfidence:          4.5,
				domain.TraitStructurePreference: 4.0,
				domain.TraitSocialComfort:       3.5,
				domain.TraitDiscipline:          4.0,
				domain.TraitCreativity:          3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitConfidence:          1.5,
				domain.TraitStructurePreference: 1.0,
				domain.TraitSocialComfort:       1.0,
				domain.TraitDiscipline:          1.0,
				domain.TraitCreativity:          0.5,
			},
		},
	},
	{
		ID:          "coaching",
		Name:        "Online Coaching",
		Category:    domain.CategoryEducation,
		Description: "Work one-on-one or in small groups helping clients reach personal or professional goals.",
		Pros:        []string{"High per-client revenue", "Deep, meaningful client relationships", "Minimal startup cost"},
		Cons:        []string{"Income capped by calendar", "Emotionally demanding", "Certification expectations in some niches"},
		Difficulty:  "beginner",
		StartupCost: "$0-$500",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Foundation", Duration: "weeks 1-4", Steps: []string{"Define a specific client transformation", "Coach five people free for testimonials", "Set a three-month package price"}},
			{Title: "Practice", Duration: "months 2-6", Steps: []string{"Publish client wins weekly", "Build referral loops", "Add a group tier"}},
		},
		InterestTags:          []string{"teaching", "fitness"},
		RequiresVideo:         true,
		RequiresPublicPersona: true,
		RequiresDirectSales:   true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitSocialComfort:      4.5,
				domain.TraitConfidence:         4.5,
				domain.TraitMotivation:         4.0,
				domain.TraitFeedbackResilience: 3.5,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitSocialComfort:      2.0,
				domain.TraitConfidence:         1.5,
				domain.TraitMotivation:         1.0,
				domain.TraitFeedbackResilience: 0.5,
			},
		},
	},
	{
		ID:          "digital-templates",
		Name:        "Digital Templates & Assets",
		Category:    domain.CategoryTech,
		Description: "Create spreadsheets, design templates, presets and other digital assets sold through marketplaces.",
		Pros:        []string{"Make once, sell forever", "No customer interaction required", "Tiny startup cost"},
		Cons:        []string{"Easy for others to copy", "Marketplace fee cut", "Needs a steady stream of new assets"},
		Difficulty:  "beginner",
		StartupCost: "$0-$200",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Catalog", Duration: "weeks 1-6", Steps: []string{"Find underserved template searches", "Ship ten polished assets", "List on two marketplaces"}},
			{Title: "Scale", Duration: "months 2-6", Steps: []string{"Bundle related assets", "Collect reviews", "Launch your own storefront"}},
		},
		InterestTags: []string{"technology", "diy", "finance"},
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitTechComfort:         4.0,
				domain.TraitCreativity:          4.0,
				domain.TraitSocialComfort:       2.0,
				domain.TraitFocusPreference:     4.0,
				domain.TraitStructurePreference: 4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitTechComfort:         1.5,
				domain.TraitCreativity:          1.5,
				domain.TraitSocialComfort:       1.0,
				domain.TraitFocusPreference:     1.0,
				domain.TraitStructurePreference: 0.5,
			},
		},
	},
	{
		ID:          "domain-flipping",
		Name:        "Domain & Site Flipping",
		Category:    domain.CategoryInvestment,
		Description: "Buy undervalued domains or small websites, improve them and resell at a profit.",
		Pros:        []string{"Asynchronous and solitary", "Clear buy-improve-sell loop", "Skills transfer from SEO and dev work"},
		Cons:        []string{"Capital at risk on every deal", "Illiquid inventory", "Valuation is part art"},
		Difficulty:  "advanced",
		StartupCost: "$1,000-$20,000",
		ActionPlan: []domain.ActionPlanPhase{
			{Title: "Learn the market", Duration: "months 1-2", Steps: []string{"Track marketplace sales for a month", "Define your niche and price band", "Set a per-deal loss limit"}},
			{Title: "First flips", Duration: "months 2-8", Steps: []string{"Buy two small sites", "Improve content and monetization", "Sell and audit each deal"}},
		},
		InterestTags:       []string{"finance", "technology"},
		RequiresHighBudget: true,
		Ideal: domain.IdealProfile{
			Targets: map[domain.TraitName]float64{
				domain.TraitRiskTolerance:   5.0,
				domain.TraitTechComfort:     4.5,
				domain.TraitSocialComfort:   2.0,
				domain.TraitDiscipline:      4.0,
				domain.TraitFocusPreference: 4.0,
			},
			Weights: map[domain.TraitName]float64{
				domain.TraitRiskTolerance:   2.5,
				domain.TraitTechComfort:     1.5,
				domain.TraitSocialComfort:   1.0,
				domain.TraitDiscipline:      1.0,
				domain.TraitFocusPreference: 1.0,
			},
		},
	},
}
