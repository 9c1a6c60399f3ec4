package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Media is the nested image/file shape stored on content documents.
type Media struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt" json:"alt"`
}

// HeroSlide is one slide of the home-page hero carousel.
type HeroSlide struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string        `bson:"title" json:"title" validate:"required"`
	Subtitle  string        `bson:"subtitle" json:"subtitle"`
	CTALabel  string        `bson:"ctaLabel" json:"ctaLabel"`
	CTAHref   string        `bson:"ctaHref" json:"ctaHref"`
	Image     Media         `bson:"image" json:"image"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type NewsItem struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string        `bson:"title" json:"title" validate:"required"`
	Slug        string        `bson:"slug" json:"slug"`
	Excerpt     string        `bson:"excerpt" json:"excerpt"`
	Body        string        `bson:"body" json:"body"`
	Image       Media         `bson:"image" json:"image"`
	Category    string        `bson:"category" json:"category"`
	Year        int           `bson:"year" json:"year"`
	PublishedAt time.Time     `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	Order       int           `bson:"order" json:"order"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type PanelMember struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name" validate:"required"`
	Title     string        `bson:"title" json:"title"`
	Bio       string        `bson:"bio" json:"bio"`
	Photo     Media         `bson:"photo" json:"photo"`
	Category  string        `bson:"category" json:"category"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Partner struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name" validate:"required"`
	Category  string        `bson:"category" json:"category" validate:"required,oneof=strategic knowledge media academic"`
	Logo      Media         `bson:"logo" json:"logo"`
	Website   string        `bson:"website" json:"website"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Testimonial struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Author    string        `bson:"author" json:"author" validate:"required"`
	Role      string        `bson:"role" json:"role"`
	Quote     string        `bson:"quote" json:"quote" validate:"required"`
	Photo     Media         `bson:"photo" json:"photo"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Event backs the MCI, Conclave and Awards event collections. Each collection
// is a singleton-active family: at most one document may be active at a time.
type Event struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title           string        `bson:"title" json:"title" validate:"required"`
	Tagline         string        `bson:"tagline" json:"tagline"`
	Description     string        `bson:"description" json:"description"`
	Venue           string        `bson:"venue" json:"venue"`
	StartDate       time.Time     `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         time.Time     `bson:"endDate,omitempty" json:"endDate,omitempty"`
	RegistrationURL string        `bson:"registrationUrl" json:"registrationUrl"`
	Banner          Media         `bson:"banner" json:"banner"`
	Order           int           `bson:"order" json:"order"`
	IsActive        bool          `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Course struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string        `bson:"title" json:"title" validate:"required"`
	Slug      string        `bson:"slug" json:"slug" validate:"required"`
	Summary   string        `bson:"summary" json:"summary"`
	Duration  string        `bson:"duration" json:"duration"`
	Level     string        `bson:"level" json:"level"`
	Image     Media         `bson:"image" json:"image"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type CourseModule struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Course    string        `bson:"course" json:"course" validate:"required"` // parent course slug
	Title     string        `bson:"title" json:"title" validate:"required"`
	Summary   string        `bson:"summary" json:"summary"`
	Position  int           `bson:"position" json:"position"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type FacultyMember struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name" validate:"required"`
	Title     string        `bson:"title" json:"title"`
	Bio       string        `bson:"bio" json:"bio"`
	Photo     Media         `bson:"photo" json:"photo"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type AcademyPartner struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name" validate:"required"`
	Logo      Media         `bson:"logo" json:"logo"`
	Website   string        `bson:"website" json:"website"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Team struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string        `bson:"name" json:"name" validate:"required"`
	Focus       string        `bson:"focus" json:"focus"`
	Description string        `bson:"description" json:"description"`
	Image       Media         `bson:"image" json:"image"`
	Order       int           `bson:"order" json:"order"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type EcosystemPartner struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name" validate:"required"`
	Logo      Media         `bson:"logo" json:"logo"`
	Website   string        `bson:"website" json:"website"`
	Order     int           `bson:"order" json:"order"`
	IsActive  bool          `bson:"isActive" json:"isActive"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Award struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string        `bson:"title" json:"title" validate:"required"`
	Recipient   string        `bson:"recipient" json:"recipient"`
	Year        int           `bson:"year" json:"year"`
	Description string        `bson:"description" json:"description"`
	Image       Media         `bson:"image" json:"image"`
	Order       int           `bson:"order" json:"order"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Signatory struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string        `bson:"name" json:"name" validate:"required"`
	Organization string        `bson:"organization" json:"organization"`
	Title        string        `bson:"title" json:"title"`
	Photo        Media         `bson:"photo" json:"photo"`
	Order        int           `bson:"order" json:"order"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Singleton-config documents: exactly one per collection, written via upsert.

type SiteSettings struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SiteName    string        `bson:"siteName" json:"siteName"`
	Tagline     string        `bson:"tagline" json:"tagline"`
	ContactMail string        `bson:"contactEmail" json:"contactEmail"`
	Phone       string        `bson:"phone" json:"phone"`
	Address     string        `bson:"address" json:"address"`
	Logo        Media         `bson:"logo" json:"logo"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type FooterSettings struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AboutBlurb string        `bson:"aboutBlurb" json:"aboutBlurb"`
	Copyright  string        `bson:"copyright" json:"copyright"`
	LinkedIn   string        `bson:"linkedin" json:"linkedin"`
	Twitter    string        `bson:"twitter" json:"twitter"`
	YouTube    string        `bson:"youtube" json:"youtube"`
	UpdatedAt  time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type AboutSettings struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Heading   string        `bson:"heading" json:"heading"`
	Body      string        `bson:"body" json:"body"`
	Mission   string        `bson:"mission" json:"mission"`
	Vision    string        `bson:"vision" json:"vision"`
	Image     Media         `bson:"image" json:"image"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
