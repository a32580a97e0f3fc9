package domain

// Closed enum values for the quote-request form. These are the exact
// strings the frontend submits, so they are customer-facing Portuguese.

const (
	SourceWebsite     = "website"
	SourceReferral    = "referral"
	SourceSocialMedia = "social_media"
	SourceDirect      = "direct"

	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

var knownProjectTypes = map[string]struct{}{
	"Site institucional": {},
	"E-commerce":         {},
	"Sistema web":        {},
	"Aplicativo mobile":  {},
	"API / Integração":   {},
	"Outro":              {},
}

var knownProjectCategories = map[string]struct{}{
	"Novo desenvolvimento": {},
	"Redesign":             {},
	"Manutenção":           {},
	"Consultoria":          {},
}

var knownTimelines = map[string]struct{}{
	"Urgente":   {},
	"1-2 meses": {},
	"3-6 meses": {},
	"6+ meses":  {},
	"Flexível":  {},
}

var knownBudgets = map[string]struct{}{
	"Até R$ 5.000":          {},
	"R$ 5.000 - R$ 15.000":  {},
	"R$ 15.000 - R$ 30.000": {},
	"R$ 30.000 - R$ 50.000": {},
	"Acima de R$ 50.000":    {},
	"A definir":             {},
}

var knownSources = map[string]struct{}{
	SourceWebsite:     {},
	SourceReferral:    {},
	SourceSocialMedia: {},
	SourceDirect:      {},
}

var knownUrgencies = map[string]struct{}{
	UrgencyLow:    {},
	UrgencyMedium: {},
	UrgencyHigh:   {},
}

func IsKnownProjectType(v string) bool {
	_, ok := knownProjectTypes[v]
	return ok
}

func IsKnownProjectCategory(v string) bool {
	_, ok := knownProjectCategories[v]
	return ok
}

func IsKnownTimeline(v string) bool {
	_, ok := knownTimelines[v]
	return ok
}

func IsKnownBudget(v string) bool {
	_, ok := knownBudgets[v]
	return ok
}

func IsKnownSource(v string) bool {
	_, ok := knownSources[v]
	return ok
}

func IsKnownUrgency(v string) bool {
	_, ok := knownUrgencies[v]
	return ok
}
