package server

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/extraction"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/roles"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/scoring"
)

// maxUploadBytes caps resume uploads at a size no real resume exceeds.
const maxUploadBytes = 10 << 20

// rawTextPreviewLines is how many leading lines of extracted text are
// echoed back for UI display.
const rawTextPreviewLines = 15

// UploadResponse is the response body for POST /api/resume/upload. It
// mirrors the evaluation data model 1:1.
type UploadResponse struct {
	ResumeID        string                  `json:"resume_id"`
	FileName        string                  `json:"file_name"`
	OverallScore    int                     `json:"overall_score"`
	Verdict         string                  `json:"verdict"`
	Summary         string                  `json:"summary"`
	ScoreBreakdown  []scoring.CategoryScore `json:"score_breakdown"`
	SkillsFound     []string                `json:"skills_found"`
	ExperienceYears float64                 `json:"experience_years"`
	PageCount       int                     `json:"page_count"`
	RawTextPreview  string                  `json:"raw_text_preview,omitempty"`
}

// RoleAnalyzeRequest is the request body for POST /api/role/analyze.
type RoleAnalyzeRequest struct {
	ResumeID string `json:"resume_id" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// Validate validates the RoleAnalyzeRequest using the validator.
func (r *RoleAnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleUploadResume runs the full upload path: persist the file, extract
// text, derive signals, score deterministically, store the bundle for
// later role analysis, then optionally polish verdict and summary wording.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Multipart field 'file' is required")
		return
	}
	defer file.Close()

	if !extraction.SupportedExtension(filepath.Ext(header.Filename)) {
		s.errorResponse(w, http.StatusBadRequest, "Unsupported file type. Only PDF and DOCX are allowed.")
		return
	}

	storedPath, err := s.uploads.Save(header.Filename, file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	extracted, err := extraction.Extract(storedPath)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to extract text from resume: "+err.Error())
		return
	}

	evaluation, bundle, err := s.evaluator.EvaluateDocument(extracted.Text, extracted.PageCount)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Could not extract any text from the uploaded resume.")
		return
	}

	resumeID := s.store.GenerateID()
	s.store.Put(resumeID, bundle)

	// Cosmetic rewrite only: scores and breakdown are already final.
	verdict, summary := s.rewriter.RewriteVerdictSummary(r.Context(), evaluation.Verdict, evaluation.Summary)

	log.Printf("Evaluated %s: overall %d (%s)", header.Filename, evaluation.OverallScore, evaluation.Verdict)
	s.jsonResponse(w, http.StatusCreated, UploadResponse{
		ResumeID:        resumeID,
		FileName:        header.Filename,
		OverallScore:    evaluation.OverallScore,
		Verdict:         verdict,
		Summary:         summary,
		ScoreBreakdown:  evaluation.Breakdown,
		SkillsFound:     bundle.SummarizeSkills(),
		ExperienceYears: bundle.EstimatedYearsExperience,
		PageCount:       bundle.PageCount,
		RawTextPreview:  previewOf(extracted.Text),
	})
}

// handleAnalyzeRole runs the role path: strict role lookup, session
// lookup, deterministic readiness comparison, then an optional rewrite of
// the explanation text only.
func (s *Server) handleAnalyzeRole(w http.ResponseWriter, r *http.Request) {
	var req RoleAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ResumeID = strings.TrimSpace(req.ResumeID)
	req.Role = strings.TrimSpace(req.Role)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume_id or role")
		return
	}

	def, ok := roles.Lookup(req.Role)
	if !ok {
		err := &ErrUnknownRole{Role: req.Role}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	bundle, ok := s.store.Get(req.ResumeID)
	if !ok {
		err := &ErrMissingSession{ResumeID: req.ResumeID}
		s.errorResponse(w, HTTPStatus(err), "Resume not found or expired")
		return
	}

	result := roles.EvaluateReadiness(bundle.UniqueSkills, bundle.EstimatedYearsExperience, def, req.Role)
	result.Explanation = s.rewriter.ExplainRole(r.Context(), result)

	log.Printf("Role analysis for %q: readiness %d (%s)", req.Role, result.ReadinessScore, result.Verdict)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListRoles returns the role catalog for UI pickers.
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": roles.List()})
}

// previewOf returns the first lines of the extracted text.
func previewOf(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > rawTextPreviewLines {
		lines = lines[:rawTextPreviewLines]
	}
	return strings.Join(lines, "\n")
}
