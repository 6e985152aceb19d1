package models

import (
	"time"

	"github.com/google/uuid"
)

type FormType string

const (
	FormJoinTeam        FormType = "join_team"
	FormContact         FormType = "contact"
	FormPartner         FormType = "partner"
	FormShareNews       FormType = "share_news"
	FormJoinGoodProject FormType = "join_good_project"
	FormTestimonial     FormType = "testimonial"
)

const (
	SubmissionPending  = "pending"
	SubmissionReviewed = "reviewed"
	SubmissionArchived = "archived"
)

func ValidFormType(t FormType) bool {
	switch t {
	case FormJoinTeam, FormContact, FormPartner, FormShareNews, FormJoinGoodProject, FormTestimonial:
		return true
	}
	return false
}

func ValidSubmissionStatus(s string) bool {
	return s == SubmissionPending || s == SubmissionReviewed || s == SubmissionArchived
}

type JoinTeamFields struct {
	InterestedFields []string `json:"interestedFields,omitempty"`
	Experience       string   `json:"experience,omitempty"`
	WorkStyle        []string `json:"workStyle,omitempty"`
	CVURL            string   `json:"cvUrl,omitempty"`
	ResumeAs         string   `json:"resumeAs,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

type ContactFields struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

type PartnerFields struct {
	BusinessName        string   `json:"businessName,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	CollaborationIdea   string   `json:"collaborationIdea,omitempty"`
	CampaignDetails     string   `json:"campaignDetails,omitempty"`
	SocialMediaAccounts string   `json:"socialMediaAccounts,omitempty"`
	ContactName         string   `json:"contactName,omitempty"`
	ContactNumber       string   `json:"contactNumber,omitempty"`
	ContactEmail        string   `json:"contactEmail,omitempty"`
	ContactMethod       []string `json:"contactMethod,omitempty"`
}

type ShareNewsFields struct {
	Story     string   `json:"story,omitempty"`
	MediaURLs []string `json:"mediaUrls,omitempty"`
}

type JoinGoodProjectFields struct {
	StudentName     string `json:"studentName,omitempty"`
	StudentEmail    string `json:"studentEmail,omitempty"`
	ProjectName     string `json:"projectName,omitempty"`
	Faculty         string `json:"faculty,omitempty"`
	University      string `json:"university,omitempty"`
	AcademicYear    string `json:"academicYear,omitempty"`
	AboutProject    string `json:"aboutProject,omitempty"`
	ProjectCategory string `json:"projectCategory,omitempty"`
	ProjectLogoURL  string `json:"projectLogoUrl,omitempty"`
	TeamPhotoURL    string `json:"teamPhotoUrl,omitempty"`
	ProjectPageLink string `json:"projectPageLink,omitempty"`
}

type TestimonialFields struct {
	CompanyName           string `json:"companyName,omitempty"`
	Role                  string `json:"role,omitempty"`
	CampaignPurpose       string `json:"campaignPurpose,omitempty"`
	ProfessionalismRating int    `json:"professionalismRating,omitempty"`
	ClarityRating         int    `json:"clarityRating,omitempty"`
	AdaptabilityRating    int    `json:"adaptabilityRating,omitempty"`
	ResponsivenessRating  int    `json:"responsivenessRating,omitempty"`
	OverallRating         int    `json:"overallRating,omitempty"`
	ContinueWorkingRating int    `json:"continueWorkingRating,omitempty"`
	RecommendRating       int    `json:"recommendRating,omitempty"`
	TestimonialComment    string `json:"testimonialComment,omitempty"`
	AgreeToShare          bool   `json:"agreeToShare,omitempty"`
}

// FormSubmission is a tagged union: a common header plus exactly one variant
// matching FormType. The active variant is what gets persisted as the
// payload document.
type FormSubmission struct {
	ID          uuid.UUID `json:"id"`
	FormType    FormType  `json:"formType"`
	Status      string    `json:"status"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`

	JoinTeam        *JoinTeamFields        `json:"joinTeam,omitempty"`
	Contact         *ContactFields         `json:"contact,omitempty"`
	Partner         *PartnerFields         `json:"partner,omitempty"`
	ShareNews       *ShareNewsFields       `json:"shareNews,omitempty"`
	JoinGoodProject *JoinGoodProjectFields `json:"joinGoodProject,omitempty"`
	Testimonial     *TestimonialFields     `json:"testimonial,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Variant returns the populated variant for the submission's FormType, or
// nil when it is missing.
func (s *FormSubmission) Variant() interface{} {
	switch s.FormType {
	case FormJoinTeam:
		if s.JoinTeam != nil {
			return s.JoinTeam
		}
	case FormContact:
		if s.Contact != nil {
			return s.Contact
		}
	case FormPartner:
		if s.Partner != nil {
			return s.Partner
		}
	case FormShareNews:
		if s.ShareNews != nil {
			return s.ShareNews
		}
	case FormJoinGoodProject:
		if s.JoinGoodProject != nil {
			return s.JoinGoodProject
		}
	case FormTestimonial:
		if s.Testimonial != nil {
			return s.Testimonial
		}
	}
	return nil
}

// VariantCount counts populated variants; a well-formed submission has
// exactly one, matching the tag.
func (s *FormSubmission) VariantCount() int {
	n := 0
	if s.JoinTeam != nil {
		n++
	}
	if s.Contact != nil {
		n++
	}
	if s.Partner != nil {
		n++
	}
	if s.ShareNews != nil {
		n++
	}
	if s.JoinGoodProject != nil {
		n++
	}
	if s.Testimonial != nil {
		n++
	}
	return n
}

// SetVariant decodes raw variant JSON into the field matching the tag.
func (s *FormSubmission) SetVariant(decode func(v interface{}) error) error {
	switch s.FormType {
	case FormJoinTeam:
		s.JoinTeam = &JoinTeamFields{}
		return decode(s.JoinTeam)
	case FormContact:
		s.Contact = &ContactFields{}
		return decode(s.Contact)
	case FormPartner:
		s.Partner = &PartnerFields{}
		return decode(s.Partner)
	case FormShareNews:
		s.ShareNews = &ShareNewsFields{}
		return decode(s.ShareNews)
	case FormJoinGoodProject:
		s.JoinGoodProject = &JoinGoodProjectFields{}
		return decode(s.JoinGoodProject)
	case FormTestimonial:
		s.Testimonial = &TestimonialFields{}
		return decode(s.Testimonial)
	}
	return nil
}
