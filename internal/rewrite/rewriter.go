// Package rewrite polishes already-computed verdict, summary and
// explanation strings with an LLM. It is strictly cosmetic: every call is
// best-effort, and any failure returns the deterministic input unchanged.
// Scores, gaps and category reasons are never sent for modification.
package rewrite

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/llm"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/roles"
)

// defaultTimeout bounds each rewrite call so a slow model can never block
// a response that is already fully computed.
const defaultTimeout = 10 * time.Second

// Rewriter wraps an optional LLM client. A nil client disables rewriting
// entirely and every method becomes a pass-through.
type Rewriter struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a rewriter. client may be nil when no API key is configured.
func New(client llm.Client) *Rewriter {
	return &Rewriter{client: client, timeout: defaultTimeout}
}

// Enabled reports whether a client is configured.
func (r *Rewriter) Enabled() bool {
	return r.client != nil
}

// RewriteVerdictSummary asks the model to restate the verdict and summary
// in one short sentence each. On any failure the originals are returned.
func (r *Rewriter) RewriteVerdictSummary(ctx context.Context, verdict, summary string) (string, string) {
	if r.client == nil {
		return verdict, summary
	}
	prompt := "Rewrite the following ATS verdict and summary in one short sentence each, " +
		"professional and direct. No emojis. Return STRICT JSON with keys: verdict (string), summary (string).\n" +
		"Current verdict: " + verdict + "\nCurrent summary: " + summary

	raw, err := r.generate(ctx, prompt)
	if err != nil {
		log.Printf("verdict rewrite unavailable, keeping deterministic text: %v", err)
		return verdict, summary
	}

	var parsed struct {
		Verdict string `json:"verdict"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("verdict rewrite returned malformed JSON, keeping deterministic text: %v", err)
		return verdict, summary
	}
	newVerdict := strings.TrimSpace(parsed.Verdict)
	newSummary := strings.TrimSpace(parsed.Summary)
	if newVerdict == "" {
		newVerdict = verdict
	}
	if newSummary == "" {
		newSummary = summary
	}
	return newVerdict, newSummary
}

// ExplainRole asks the model to restate a readiness result as one short
// paragraph. The deterministic explanation is returned on any failure.
func (r *Rewriter) ExplainRole(ctx context.Context, result *roles.ReadinessResult) string {
	if r.client == nil {
		return result.Explanation
	}
	prompt := fmt.Sprintf(
		"Turn this role-readiness analysis into one short, professional paragraph. "+
			"Do not add scores or invent gaps. No emojis. Return STRICT JSON with key: explanation (string).\n"+
			"Role: %s. Verdict: %s. Readiness: %d/100. Strengths: %s. Skill gaps: %s. Experience: %s",
		result.TargetRole, result.Verdict, result.ReadinessScore,
		strings.Join(result.Strengths, ", "), strings.Join(result.Gaps, ", "), result.ExperienceGap)

	raw, err := r.generate(ctx, prompt)
	if err != nil {
		log.Printf("role explanation rewrite unavailable, keeping deterministic text: %v", err)
		return result.Explanation
	}

	var parsed struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("role explanation rewrite returned malformed JSON, keeping deterministic text: %v", err)
		return result.Explanation
	}
	if explanation := strings.TrimSpace(parsed.Explanation); explanation != "" {
		return explanation
	}
	return result.Explanation
}

// generate runs one bounded LLM call.
func (r *Rewriter) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.GenerateJSON(ctx, prompt)
}
