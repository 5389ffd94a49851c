package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jordan/creator-marketplace/internal/types"
)

// Engine scores campaigns against Brand-Fit profiles. It holds only
// configuration; every Score call is a pure function of its inputs.
type Engine struct {
	cfg   Config
	canon map[string]string // lowercased alias -> canonical category
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	canon := make(map[string]string)
	for canonical, aliases := range cfg.Synonyms {
		key := strings.ToLower(strings.TrimSpace(canonical))
		canon[key] = key
		for _, alias := range aliases {
			canon[strings.ToLower(strings.TrimSpace(alias))] = key
		}
	}
	return &Engine{cfg: cfg, canon: canon}
}

// canonical maps a raw category label to its canonical form, falling back
// to the trimmed lowercase label when no synonym entry exists.
func (e *Engine) canonical(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return ""
	}
	if c, ok := e.canon[key]; ok {
		return c
	}
	return key
}

// Score evaluates one campaign against one profile. The returned result
// carries the clamped 0-100 score, human-readable reasons, and whether a
// policy constraint excludes the campaign from the matched view outright.
func (e *Engine) Score(profile *types.BrandFitProfile, campaign *types.Campaign) types.MatchResult {
	if profile == nil {
		profile = &types.BrandFitProfile{}
	}

	// Policy constraints are hard filters, never preference weights: no
	// amount of positive signal overrides them.
	if excluded, reason := exclusionReason(profile, campaign); excluded {
		return types.MatchResult{
			MatchScore:   0,
			MatchReasons: []string{reason},
			Excluded:     true,
		}
	}

	total := 0.0
	var reasons []string

	if pts, reason := e.categoryAlignment(profile, campaign); pts > 0 {
		total += pts
		reasons = append(reasons, reason)
	}
	if pts, reason := e.contentStyleAlignment(profile, campaign); pts > 0 {
		total += pts
		reasons = append(reasons, reason)
	}
	if pts, reason := cameraComfortFit(profile, campaign); pts > 0 {
		total += pts
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}
	if pts, reason := collaborationFit(profile); pts > 0 {
		total += pts
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}
	if pts := creativeControlFit(profile); pts > 0 {
		total += pts
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.MatchResult{
		MatchScore:   score,
		MatchReasons: reasons,
		IsTopMatch:   score >= TopMatchThreshold,
	}
}

// exclusionReason evaluates the hard policy filters.
func exclusionReason(profile *types.BrandFitProfile, campaign *types.Campaign) (bool, string) {
	if campaign.IsRegulated && profile.AlcoholOpenness == types.AlcoholNo {
		return true, "Regulated brand conflicts with your survey preferences"
	}
	if campaign.RequiresVehicle &&
		(profile.DrivingComfort == types.DrivingNotComfortable || profile.DrivingComfort == types.DrivingPassengerOnly) {
		return true, "Campaign requires driving content you opted out of"
	}
	return false, ""
}

// categoryAlignment awards the dominant score share, scaled by the fraction
// of the campaign's categories the creator declared interest in.
func (e *Engine) categoryAlignment(profile *types.BrandFitProfile, campaign *types.Campaign) (float64, string) {
	if len(profile.BrandCategories) == 0 || len(campaign.Categories) == 0 {
		return 0, ""
	}

	declared := make(map[string]bool, len(profile.BrandCategories))
	for _, c := range profile.BrandCategories {
		if key := e.canonical(c); key != "" {
			declared[key] = true
		}
	}

	matched := make([]string, 0)
	seen := make(map[string]bool)
	for _, c := range campaign.Categories {
		key := e.canonical(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if declared[key] {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return 0, ""
	}

	fraction := float64(len(matched)) / float64(len(seen))
	pts := categoryWeight * fraction

	label := "Category match"
	if fraction >= 1.0 {
		label = "Strong category match"
	}
	return pts, fmt.Sprintf("%s (%s)", label, strings.Join(matched, ", "))
}

// contentStyleAlignment scores overlap between declared content styles and
// the campaign's expected content types.
func (e *Engine) contentStyleAlignment(profile *types.BrandFitProfile, campaign *types.Campaign) (float64, string) {
	if len(profile.ContentStyles) == 0 || len(campaign.ContentType) == 0 {
		return 0, ""
	}

	declared := make(map[string]bool, len(profile.ContentStyles))
	for _, s := range profile.ContentStyles {
		key := strings.ToLower(strings.TrimSpace(s))
		if key != "" {
			declared[key] = true
		}
	}

	matched := make([]string, 0)
	seen := make(map[string]bool)
	for _, ct := range campaign.ContentType {
		key := strings.ToLower(strings.TrimSpace(ct))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if declared[key] {
			matched = append(matched, ct)
		}
	}
	if len(matched) == 0 {
		return 0, ""
	}

	fraction := float64(len(matched)) / float64(len(seen))
	return contentStyleWeight * fraction,
		fmt.Sprintf("Content style fit (%s)", strings.Join(matched, ", "))
}

// onCameraContent lists content types that imply an on-camera presence.
var onCameraContent = map[string]bool{
	"reviews":  true,
	"unboxing": true,
	"vlog":     true,
	"tutorial": true,
	"haul":     true,
	"try_on":   true,
}

// impliesOnCamera reports whether any of the campaign's content types
// expect the creator on camera.
func impliesOnCamera(campaign *types.Campaign) bool {
	for _, ct := range campaign.ContentType {
		if onCameraContent[strings.ToLower(strings.TrimSpace(ct))] {
			return true
		}
	}
	return false
}

// cameraComfortFit checks declared camera comfort against the campaign's
// content expectations. An off-camera creator gets no points for an
// on-camera campaign, but this is a fit signal, not a policy exclusion.
func cameraComfortFit(profile *types.BrandFitProfile, campaign *types.Campaign) (float64, string) {
	if profile.CameraComfort == "" {
		return 0, ""
	}
	if !impliesOnCamera(campaign) {
		// No on-camera expectation: any declared comfort level is compatible.
		return cameraComfortWeight, ""
	}
	switch profile.CameraComfort {
	case types.CameraOnCamera:
		return cameraComfortWeight, "On-camera comfort fits the content format"
	case types.CameraVoiceover:
		return cameraComfortWeight / 2, ""
	default:
		return 0, ""
	}
}

// collaborationFit is advisory: campaigns carry no collaboration-type
// field, so declared flexibility earns the full weight and any other
// declared preference half of it.
func collaborationFit(profile *types.BrandFitProfile) (float64, string) {
	switch profile.CollaborationType {
	case "":
		return 0, ""
	case types.CollabAny:
		return collaborationWeight, "Open to any collaboration length"
	default:
		return collaborationWeight / 2, ""
	}
}

// creativeControlFit is advisory for the same reason as collaborationFit.
func creativeControlFit(profile *types.BrandFitProfile) float64 {
	switch profile.CreativeControl {
	case "":
		return 0
	case types.ControlCollaborative:
		return creativeControlWeight
	default:
		return creativeControlWeight / 2
	}
}

// RankByScore returns a copy of scored campaigns sorted by descending
// score. Ties keep declaration order (stable sort). Callers that want the
// catalog's own order use the MatchCampaigns output directly.
func RankByScore(scored []types.ScoredCampaign) []types.ScoredCampaign {
	out := make([]types.ScoredCampaign, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}
