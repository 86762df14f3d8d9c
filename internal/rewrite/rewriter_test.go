package rewrite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/roles"
)

// fakeClient returns a canned response or error for every prompt.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func sampleResult() *roles.ReadinessResult {
	return &roles.ReadinessResult{
		TargetRole:     "data_scientist",
		ReadinessScore: 62,
		Verdict:        roles.VerdictPartiallyReady,
		Strengths:      []string{"python", "sql"},
		Gaps:           []string{"machine learning"},
		ExperienceGap:  "Meets or exceeds the typical 3+ years experience for Data Scientist.",
		Explanation:    "For Data Scientist, your readiness score is 62/100 (Partially Ready).",
	}
}

func TestRewriter_NilClientPassesThrough(t *testing.T) {
	r := New(nil)
	assert.False(t, r.Enabled())

	verdict, summary := r.RewriteVerdictSummary(context.Background(), "Strong", "Looks good.")
	assert.Equal(t, "Strong", verdict)
	assert.Equal(t, "Looks good.", summary)

	assert.Equal(t, sampleResult().Explanation, r.ExplainRole(context.Background(), sampleResult()))
}

func TestRewriteVerdictSummary_UsesModelOutput(t *testing.T) {
	fake := &fakeClient{response: `{"verdict": "Strong fit", "summary": "A clear, well-structured resume."}`}
	r := New(fake)
	require.True(t, r.Enabled())

	verdict, summary := r.RewriteVerdictSummary(context.Background(), "Strong", "Looks good.")
	assert.Equal(t, "Strong fit", verdict)
	assert.Equal(t, "A clear, well-structured resume.", summary)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Current verdict: Strong")
}

func TestRewriteVerdictSummary_ErrorKeepsOriginals(t *testing.T) {
	r := New(&fakeClient{err: errors.New("quota exceeded")})

	verdict, summary := r.RewriteVerdictSummary(context.Background(), "Moderate", "Summary text.")
	assert.Equal(t, "Moderate", verdict)
	assert.Equal(t, "Summary text.", summary)
}

func TestRewriteVerdictSummary_MalformedJSONKeepsOriginals(t *testing.T) {
	r := New(&fakeClient{response: "not json at all"})

	verdict, summary := r.RewriteVerdictSummary(context.Background(), "Low", "Needs work.")
	assert.Equal(t, "Low", verdict)
	assert.Equal(t, "Needs work.", summary)
}

func TestRewriteVerdictSummary_EmptyFieldsKeepOriginals(t *testing.T) {
	r := New(&fakeClient{response: `{"verdict": "  ", "summary": "Rewritten summary."}`})

	verdict, summary := r.RewriteVerdictSummary(context.Background(), "Low", "Needs work.")
	assert.Equal(t, "Low", verdict)
	assert.Equal(t, "Rewritten summary.", summary)
}

func TestExplainRole_UsesModelOutput(t *testing.T) {
	fake := &fakeClient{response: `{"explanation": "You are close to ready for this role."}`}
	r := New(fake)

	got := r.ExplainRole(context.Background(), sampleResult())
	assert.Equal(t, "You are close to ready for this role.", got)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Readiness: 62/100")
	assert.Contains(t, fake.prompts[0], "python, sql")
}

func TestExplainRole_FailuresKeepDeterministicText(t *testing.T) {
	want := sampleResult().Explanation

	for name, fake := range map[string]*fakeClient{
		"error":     {err: errors.New("timeout")},
		"malformed": {response: "{{{"},
		"empty":     {response: `{"explanation": ""}`},
	} {
		r := New(fake)
		assert.Equal(t, want, r.ExplainRole(context.Background(), sampleResult()), name)
	}
}
