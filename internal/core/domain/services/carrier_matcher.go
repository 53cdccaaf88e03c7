package services

import (
	"sort"
	"strings"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// Match score points per rule. The rules are additive and the final score is
// clamped to [MinScore, MaxScore].
const (
	regionPoints        = 40
	fleetPoints         = 30
	servicePoints       = 20
	warehousingPoints   = 10
	compliantPoints     = 10
	nonCompliantPenalty = 20

	// MinScore is the lower clamp bound for match scores.
	MinScore = 0
	// MaxScore is the upper clamp bound for match scores.
	MaxScore = 100
)

// roadFreightService is the normalized capability the service-fit rule
// looks for in a carrier's offered services.
const roadFreightService = "roadfreight"

// MatchResult is the ranked outcome of scoring one carrier against a job.
// Results are ephemeral: computed per request, never persisted.
type MatchResult struct {
	// CarrierID identifies the scored carrier.
	CarrierID kernel.UUID
	// CarrierName is the carrier's trading name, carried for display.
	CarrierName string
	// Score is the additive match score, clamped to [0, 100].
	Score int
	// Reasons are human-readable rationale strings in scoring-rule order.
	Reasons []string
	// ComplianceStatus is the carrier's derived document classification.
	ComplianceStatus carrier.ComplianceStatus
}

// CarrierMatcher ranks candidate carriers against a job's requirements.
// It is a pure domain service: no side effects, no I/O, and deterministic
// output for identical inputs.
//
// Scoring (additive, in rule order):
//  1. Region fit: +40 when any region of interest textually overlaps the
//     job's pickup or delivery region (bidirectional case-insensitive
//     substring after separator normalization)
//  2. Fleet fit: +30 when any fleet type overlaps the required vehicle
//     category; skipped without penalty when the job sets none
//  3. Service fit: +20 when the carrier offers a road-freight-equivalent
//     capability
//  4. Facility bonus: +10 for warehousing
//  5. Compliance adjustment: +10 compliant, 0 warning, -20 non-compliant
//
// The matcher never filters its input: pre-filtering on exact criteria is
// the caller's concern (see ports.CarrierFilter). Output is sorted by
// descending score; equal scores order by ascending carrier identity so
// repeated calls produce identical rankings.
//
// The substring overlap is a deliberate heuristic: a region like "North
// East" can overlap unrelated names that contain it. Tightening the match
// changes ranking behavior and is a product decision, not a code fix.
type CarrierMatcher struct {
	evaluator ComplianceEvaluator
}

// NewCarrierMatcher creates a matcher that classifies carrier documents
// through the given evaluator.
func NewCarrierMatcher(evaluator ComplianceEvaluator) CarrierMatcher {
	return CarrierMatcher{evaluator: evaluator}
}

// Rank scores every carrier against the job's requirements as of the given
// timestamp and returns the results ordered best-first. An empty carrier
// slice yields an empty result list, not an error.
func (m CarrierMatcher) Rank(
	j *job.Job, carriers []*carrier.Carrier, asOf time.Time,
) ([]MatchResult, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	results := make([]MatchResult, 0, len(carriers))
	for _, c := range carriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		results = append(results, m.score(j.Requirements(), c, asOf))
	}

	sort.SliceStable(results, func(i, k int) bool {
		if results[i].Score != results[k].Score {
			return results[i].Score > results[k].Score
		}
		return results[i].CarrierID.String() < results[k].CarrierID.String()
	})

	return results, nil
}

// score applies the scoring rules to one carrier.
func (m CarrierMatcher) score(
	requirements job.Requirements, c *carrier.Carrier, asOf time.Time,
) MatchResult {
	var (
		score   int
		reasons []string
	)

	// 1. Region fit
	if overlapsAny(c.RegionsOfInterest(), requirements.PickupRegion()) ||
		overlapsAny(c.RegionsOfInterest(), requirements.DeliveryRegion()) {
		score += regionPoints
		reasons = append(reasons, "covers the pickup or delivery region")
	} else {
		reasons = append(reasons, "no regional coverage")
	}

	// 2. Fleet fit; skipped without penalty when the job sets no category
	if requirements.VehicleType() == "" {
		reasons = append(reasons, "no vehicle category required")
	} else if overlapsAny(c.FleetTypes(), requirements.VehicleType()) {
		score += fleetPoints
		reasons = append(reasons, "fleet covers the required vehicle type")
	} else {
		reasons = append(reasons, "fleet does not cover the required vehicle type")
	}

	// 3. Service fit
	if offersRoadFreight(c.ServicesOffered()) {
		score += servicePoints
		reasons = append(reasons, "offers road freight")
	} else {
		reasons = append(reasons, "does not offer road freight")
	}

	// 4. Facility bonus
	if c.HasWarehousing() {
		score += warehousingPoints
		reasons = append(reasons, "warehousing available")
	} else {
		reasons = append(reasons, "no warehousing")
	}

	// 5. Compliance adjustment
	complianceStatus := m.evaluator.Evaluate(c.ComplianceDocuments(), asOf)
	switch complianceStatus {
	case carrier.Compliant:
		score += compliantPoints
		reasons = append(reasons, "compliance documents in order")
	case carrier.NonCompliant:
		score -= nonCompliantPenalty
		reasons = append(reasons, "compliance documents missing or expired")
	default:
		reasons = append(reasons, "compliance documents incomplete or near expiry")
	}

	return MatchResult{
		CarrierID:        c.ID(),
		CarrierName:      c.Name(),
		Score:            clampScore(score),
		Reasons:          reasons,
		ComplianceStatus: complianceStatus,
	}
}

// clampScore bounds a raw additive score to [MinScore, MaxScore].
func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// normalizeText lowercases and strips separator characters so free-text
// identifiers like "Curtain-side" and "curtain_sider" become comparable.
func normalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '.', '/':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// textOverlap reports a bidirectional substring match between two free-text
// identifiers after normalization.
func textOverlap(a, b string) bool {
	na, nb := normalizeText(a), normalizeText(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// overlapsAny reports whether any entry of the set overlaps the target.
func overlapsAny(set []string, target string) bool {
	for _, entry := range set {
		if textOverlap(entry, target) {
			return true
		}
	}
	return false
}

// offersRoadFreight reports whether any offered service names a
// road-freight-equivalent capability.
func offersRoadFreight(services []string) bool {
	for _, service := range services {
		if strings.Contains(normalizeText(service), roadFreightService) {
			return true
		}
	}
	return false
}
