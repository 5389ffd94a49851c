// Package types provides type definitions for structured data used throughout the creator-marketplace system.
package types

// AlcoholOpenness constants for regulated-brand collaboration willingness
const (
	AlcoholYes           = "yes"
	AlcoholYesGuidelines = "yes_guidelines"
	AlcoholNo            = "no"
)

// DrivingComfort constants
const (
	DrivingComfortable   = "comfortable"
	DrivingPassengerOnly = "passenger_only"
	DrivingNotComfortable = "not_comfortable"
)

// CameraComfort constants
const (
	CameraOnCamera  = "on_camera"
	CameraVoiceover = "voiceover"
	CameraOffCamera = "off_camera"
)

// CollaborationType constants
const (
	CollabOneOff    = "one_off"
	CollabShortTerm = "short_term"
	CollabLongTerm  = "long_term"
	CollabAny       = "any"
)

// CreativeControl constants
const (
	ControlFull          = "full"
	ControlCollaborative = "collaborative"
	ControlBrandLed      = "brand_led"
)

// BrandFitProfile is a creator's declared preference set, collected by the
// Brand-Fit survey. Every field is optional: an empty string or empty slice
// means the creator has not answered that question yet, and it contributes
// nothing to matching.
type BrandFitProfile struct {
	BrandCategories   []string `json:"brand_categories,omitempty"`
	AlcoholOpenness   string   `json:"alcohol_openness,omitempty"`
	PersonalAssets    []string `json:"personal_assets,omitempty"`
	DrivingComfort    string   `json:"driving_comfort,omitempty"`
	ContentStyles     []string `json:"content_styles,omitempty"`
	CameraComfort     string   `json:"camera_comfort,omitempty"`
	AvoidedTopics     string   `json:"avoided_topics,omitempty"`
	AudienceType      string   `json:"audience_type,omitempty"`
	CollaborationType string   `json:"collaboration_type,omitempty"`
	CreativeControl   string   `json:"creative_control,omitempty"`
}

// IsEmpty reports whether no survey question has been answered at all.
func (p *BrandFitProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return len(p.BrandCategories) == 0 &&
		p.AlcoholOpenness == "" &&
		len(p.PersonalAssets) == 0 &&
		p.DrivingComfort == "" &&
		len(p.ContentStyles) == 0 &&
		p.CameraComfort == "" &&
		p.AvoidedTopics == "" &&
		p.AudienceType == "" &&
		p.CollaborationType == "" &&
		p.CreativeControl == ""
}

// TrackedFields returns, in declaration order, whether each of the 10
// tracked survey fields holds a non-empty answer. Completion scoring and
// its tests both key off this single definition.
func (p *BrandFitProfile) TrackedFields() []bool {
	if p == nil {
		return make([]bool, 10)
	}
	return []bool{
		len(p.BrandCategories) > 0,
		p.AlcoholOpenness != "",
		len(p.PersonalAssets) > 0,
		p.DrivingComfort != "",
		len(p.ContentStyles) > 0,
		p.CameraComfort != "",
		p.AvoidedTopics != "",
		p.AudienceType != "",
		p.CollaborationType != "",
		p.CreativeControl != "",
	}
}
