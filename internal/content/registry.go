package content

import (
	"mediation_portal/internal/models"
)

// Entry describes one content type: where it lives, what its payloads look
// like, how reads may be filtered and which public pages must be revalidated
// after a mutation.
type Entry struct {
	Segment         string   // route segment under /api/content/
	Collection      string   // mongo collection
	Resource        string   // audit resource name
	SingletonActive bool     // at most one active document per collection
	Singleton       bool     // single config document, written via upsert
	Filters         []string // query params passed through as equality filters
	Revalidate      []string // public page paths rendered from this collection

	schema *Schema
}

// Schema returns the reflected field schema for this entry.
func (e *Entry) Schema() *Schema { return e.schema }

var registry []*Entry

func register(e *Entry, model any) *Entry {
	e.schema = newSchema(model)
	registry = append(registry, e)
	return e
}

// All returns every registered content type in registration order.
func All() []*Entry { return registry }

// Lookup finds an entry by route segment.
func Lookup(segment string) (*Entry, bool) {
	for _, e := range registry {
		if e.Segment == segment {
			return e, true
		}
	}
	return nil, false
}

var (
	HeroSlides = register(&Entry{
		Segment:    "hero-slides",
		Collection: "hero_slides",
		Resource:   "hero_slide",
		Revalidate: []string{"/"},
	}, models.HeroSlide{})

	News = register(&Entry{
		Segment:    "news",
		Collection: "news",
		Resource:   "news_item",
		Filters:    []string{"category", "year"},
		Revalidate: []string{"/", "/resources/news"},
	}, models.NewsItem{})

	PanelMembers = register(&Entry{
		Segment:    "panel-members",
		Collection: "panel_members",
		Resource:   "panel_member",
		Filters:    []string{"category"},
		Revalidate: []string{"/mediation/panel"},
	}, models.PanelMember{})

	Partners = register(&Entry{
		Segment:    "partners",
		Collection: "partners",
		Resource:   "partner",
		Filters:    []string{"category"},
		Revalidate: []string{"/", "/ecosystem/partners"},
	}, models.Partner{})

	Testimonials = register(&Entry{
		Segment:    "testimonials",
		Collection: "testimonials",
		Resource:   "testimonial",
		Revalidate: []string{"/"},
	}, models.Testimonial{})

	MCIEvent = register(&Entry{
		Segment:         "mci-event",
		Collection:      "mci_events",
		Resource:        "mci_event",
		SingletonActive: true,
		Revalidate:      []string{"/", "/events/mci"},
	}, models.Event{})

	ConclaveEvent = register(&Entry{
		Segment:         "conclave-event",
		Collection:      "conclave_events",
		Resource:        "conclave_event",
		SingletonActive: true,
		Revalidate:      []string{"/", "/events/conclave"},
	}, models.Event{})

	AwardsEvent = register(&Entry{
		Segment:         "awards-event",
		Collection:      "awards_events",
		Resource:        "awards_event",
		SingletonActive: true,
		Revalidate:      []string{"/", "/events/awards"},
	}, models.Event{})

	AcademyCourses = register(&Entry{
		Segment:    "academy-courses",
		Collection: "academy_courses",
		Resource:   "academy_course",
		Filters:    []string{"level"},
		Revalidate: []string{"/academy", "/academy/courses"},
	}, models.Course{})

	AcademyModules = register(&Entry{
		Segment:    "academy-modules",
		Collection: "academy_modules",
		Resource:   "academy_module",
		Filters:    []string{"course"},
		Revalidate: []string{"/academy/courses"},
	}, models.CourseModule{})

	AcademyFaculty = register(&Entry{
		Segment:    "academy-faculty",
		Collection: "academy_faculty",
		Resource:   "faculty_member",
		Revalidate: []string{"/academy/faculty"},
	}, models.FacultyMember{})

	AcademyPartners = register(&Entry{
		Segment:    "academy-partners",
		Collection: "academy_partners",
		Resource:   "academy_partner",
		Revalidate: []string{"/academy"},
	}, models.AcademyPartner{})

	EcosystemTeams = register(&Entry{
		Segment:    "ecosystem-teams",
		Collection: "ecosystem_teams",
		Resource:   "ecosystem_team",
		Revalidate: []string{"/ecosystem", "/ecosystem/teams"},
	}, models.Team{})

	EcosystemPartners = register(&Entry{
		Segment:    "ecosystem-partners",
		Collection: "ecosystem_partners",
		Resource:   "ecosystem_partner",
		Revalidate: []string{"/ecosystem/partners"},
	}, models.EcosystemPartner{})

	EcosystemAwards = register(&Entry{
		Segment:    "ecosystem-awards",
		Collection: "ecosystem_awards",
		Resource:   "ecosystem_award",
		Filters:    []string{"year"},
		Revalidate: []string{"/ecosystem/awards"},
	}, models.Award{})

	EcosystemSignatories = register(&Entry{
		Segment:    "ecosystem-signatories",
		Collection: "ecosystem_signatories",
		Resource:   "ecosystem_signatory",
		Revalidate: []string{"/ecosystem/signatories"},
	}, models.Signatory{})

	SiteSettings = register(&Entry{
		Segment:    "site-settings",
		Collection: "site_settings",
		Resource:   "site_settings",
		Singleton:  true,
		Revalidate: []string{"/"},
	}, models.SiteSettings{})

	FooterSettings = register(&Entry{
		Segment:    "footer-settings",
		Collection: "footer_settings",
		Resource:   "footer_settings",
		Singleton:  true,
		Revalidate: []string{"/"},
	}, models.FooterSettings{})

	AboutSettings = register(&Entry{
		Segment:    "about-settings",
		Collection: "about_settings",
		Resource:   "about_settings",
		Singleton:  true,
		Revalidate: []string{"/legal/about"},
	}, models.AboutSettings{})
)
