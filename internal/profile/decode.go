// Package profile owns the Brand-Fit profile lifecycle: schema-validated
// deserialization of the persisted blob, per-field patch merging, and
// debounced persistence.
//
// The persisted profile is an opaque JSON blob written by older clients
// with no validation, so the deserialization boundary here is deliberately
// forgiving: any missing or malformed field falls back to its empty
// default instead of propagating into the scoring logic.
package profile

import (
	"encoding/json"
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jordan/creator-marketplace/internal/types"
)

//go:embed brand_fit.schema.json
var brandFitSchema string

// allowed enum values per field; anything else defaults to unanswered
var (
	alcoholValues = map[string]bool{
		types.AlcoholYes: true, types.AlcoholYesGuidelines: true, types.AlcoholNo: true,
	}
	drivingValues = map[string]bool{
		types.DrivingComfortable: true, types.DrivingPassengerOnly: true, types.DrivingNotComfortable: true,
	}
	cameraValues = map[string]bool{
		types.CameraOnCamera: true, types.CameraVoiceover: true, types.CameraOffCamera: true,
	}
	collabValues = map[string]bool{
		types.CollabOneOff: true, types.CollabShortTerm: true, types.CollabLongTerm: true, types.CollabAny: true,
	}
	controlValues = map[string]bool{
		types.ControlFull: true, types.ControlCollaborative: true, types.ControlBrandLed: true,
	}
)

// Decode parses a persisted Brand-Fit blob. Unparseable JSON is the only
// hard error; an empty blob yields an empty profile, and individual fields
// that fail validation are silently defaulted.
func Decode(raw []byte) (*types.BrandFitProfile, error) {
	if len(raw) == 0 {
		return &types.BrandFitProfile{}, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse brand-fit blob: %w", err)
	}

	// Fast path: a blob that validates cleanly unmarshals directly.
	if validatesAgainstSchema(raw) {
		var p types.BrandFitProfile
		if err := json.Unmarshal(raw, &p); err == nil {
			sanitize(&p)
			return &p, nil
		}
	}

	// Salvage path: pick out only the well-formed fields.
	p := &types.BrandFitProfile{}
	applyDocument(p, doc)
	return p, nil
}

// ApplyPatch merges a partial update onto base, last-write-wins per field:
// only keys present in the patch document are touched, so concurrent edits
// to different fields within a debounce window coalesce instead of
// clobbering each other. The base profile is not mutated.
func ApplyPatch(base *types.BrandFitProfile, patch []byte) (*types.BrandFitProfile, error) {
	var doc map[string]any
	if err := json.Unmarshal(patch, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse brand-fit patch: %w", err)
	}

	merged := types.BrandFitProfile{}
	if base != nil {
		merged = *base
		merged.BrandCategories = append([]string(nil), base.BrandCategories...)
		merged.PersonalAssets = append([]string(nil), base.PersonalAssets...)
		merged.ContentStyles = append([]string(nil), base.ContentStyles...)
	}
	applyDocument(&merged, doc)
	return &merged, nil
}

func validatesAgainstSchema(raw []byte) bool {
	schemaLoader := gojsonschema.NewStringLoader(brandFitSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	return err == nil && result.Valid()
}

// applyDocument copies each well-formed field present in doc onto p.
func applyDocument(p *types.BrandFitProfile, doc map[string]any) {
	if v, ok := doc["brand_categories"]; ok {
		p.BrandCategories = stringSlice(v)
	}
	if v, ok := doc["alcohol_openness"]; ok {
		p.AlcoholOpenness = enumValue(v, alcoholValues)
	}
	if v, ok := doc["personal_assets"]; ok {
		p.PersonalAssets = stringSlice(v)
	}
	if v, ok := doc["driving_comfort"]; ok {
		p.DrivingComfort = enumValue(v, drivingValues)
	}
	if v, ok := doc["content_styles"]; ok {
		p.ContentStyles = stringSlice(v)
	}
	if v, ok := doc["camera_comfort"]; ok {
		p.CameraComfort = enumValue(v, cameraValues)
	}
	if v, ok := doc["avoided_topics"]; ok {
		p.AvoidedTopics = stringValue(v)
	}
	if v, ok := doc["audience_type"]; ok {
		p.AudienceType = stringValue(v)
	}
	if v, ok := doc["collaboration_type"]; ok {
		p.CollaborationType = enumValue(v, collabValues)
	}
	if v, ok := doc["creative_control"]; ok {
		p.CreativeControl = enumValue(v, controlValues)
	}
}

// sanitize clears enum fields holding values outside the allowed sets.
func sanitize(p *types.BrandFitProfile) {
	p.AlcoholOpenness = keepIfAllowed(p.AlcoholOpenness, alcoholValues)
	p.DrivingComfort = keepIfAllowed(p.DrivingComfort, drivingValues)
	p.CameraComfort = keepIfAllowed(p.CameraComfort, cameraValues)
	p.CollaborationType = keepIfAllowed(p.CollaborationType, collabValues)
	p.CreativeControl = keepIfAllowed(p.CreativeControl, controlValues)
}

func keepIfAllowed(v string, allowed map[string]bool) string {
	if v == "" || allowed[v] {
		return v
	}
	return ""
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func enumValue(v any, allowed map[string]bool) string {
	s, ok := v.(string)
	if !ok || !allowed[s] {
		return ""
	}
	return s
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
