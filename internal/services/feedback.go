package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
)

// Completer is the hosted-LLM abstraction. A nil Completer puts the service
// in fallback mode, matching an unconfigured credential.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// QuestionCache caches generated question lists.
type QuestionCache interface {
	GetQuestions(ctx context.Context, topic, difficulty string, count int) ([]string, error)
	SetQuestions(ctx context.Context, topic, difficulty string, count int, questions []string) error
}

// Feedback is the structured analysis of one question/answer pair.
type Feedback struct {
	Score               int      `json:"score"`
	OverallFeedback     string   `json:"overall_feedback"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	CommunicationScore  int      `json:"communication_score"`
	RelevanceScore      int      `json:"relevance_score"`
	ConfidenceScore     int      `json:"confidence_score"`
	SpecificSuggestions []string `json:"specific_suggestions"`
}

// EmotionSnapshot carries the emotion context supplied with a comprehensive
// analysis request.
type EmotionSnapshot struct {
	Emotion         string  `json:"emotion"`
	Confidence      float64 `json:"confidence"`
	EyeContactScore float64 `json:"eye_contact_score"`
}

// ComprehensiveFeedback combines verbal and emotional analysis.
type ComprehensiveFeedback struct {
	OverallScore        int      `json:"overall_score"`
	CommunicationScore  int      `json:"communication_score"`
	ConfidenceScore     int      `json:"confidence_score"`
	EmotionalStability  int      `json:"emotional_stability"`
	OverallFeedback     string   `json:"overall_feedback"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	EmotionalInsights   string   `json:"emotional_insights"`
	SpecificSuggestions []string `json:"specific_suggestions"`
}

// FeedbackService produces answer feedback and interview questions. The LLM
// path is primary; every operation recovers locally through a deterministic
// fallback when the LLM is unconfigured, errors out, or returns unparsable
// output. External failures are never surfaced to the caller.
type FeedbackService struct {
	llm   Completer
	cache QuestionCache
}

// NewFeedbackService creates a new FeedbackService. llm and cache may be nil.
func NewFeedbackService(llm Completer, cache QuestionCache) *FeedbackService {
	return &FeedbackService{llm: llm, cache: cache}
}

// AnalyzeAnswer returns structured feedback and follow-up questions for one
// question/answer pair.
func (svc *FeedbackService) AnalyzeAnswer(ctx context.Context, question, answer string) (*Feedback, []string, error) {
	feedback := svc.analyzeWithLLM(ctx, question, answer)
	followUps := svc.followUpQuestions(ctx, question, answer)
	return feedback, followUps, nil
}

func (svc *FeedbackService) analyzeWithLLM(ctx context.Context, question, answer string) *Feedback {
	if svc.llm == nil {
		logger.Log.Infow("LLM not configured, using fallback analysis")
		return fallbackFeedback(question, answer)
	}

	prompt := fmt.Sprintf(`Analyze this interview response and provide detailed feedback.

Question: %s
Answer: %s

Provide a structured analysis in JSON format with the fields: score (0-100),
overall_feedback, strengths, improvements, communication_score (0-100),
relevance_score (0-100), confidence_score (0-100), specific_suggestions.

Focus on clarity and structure, relevance to the question, use of specific
examples, communication skills and confidence level.`, question, answer)

	text, err := svc.llm.Complete(ctx, "You are an expert interview coach providing detailed, constructive feedback.", prompt, 1000)
	if err != nil {
		logger.Log.Errorw("LLM analysis failed, using fallback", "error", err)
		return fallbackFeedback(question, answer)
	}

	jsonStr, ok := extractJSONObject(text)
	if !ok {
		logger.Log.Warnw("no JSON object in LLM response, using fallback")
		return fallbackFeedback(question, answer)
	}

	var feedback Feedback
	if err := json.Unmarshal([]byte(jsonStr), &feedback); err != nil {
		logger.Log.Warnw("failed to parse LLM response, using fallback", "error", err)
		return fallbackFeedback(question, answer)
	}

	return &feedback
}

// followUpQuestions generates follow-up questions for the exchange, falling
// back to a fixed pair.
func (svc *FeedbackService) followUpQuestions(ctx context.Context, question, answer string) []string {
	fallback := []string{
		"Can you provide more details about that?",
		"What was the outcome of that situation?",
	}

	if svc.llm == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Based on this interview exchange, generate 2-3 relevant follow-up questions:

Original Question: %s
Answer: %s

Generate questions that would help explore the candidate's experience deeper.
Return as a JSON array of strings.`, question, answer)

	text, err := svc.llm.Complete(ctx, "You are an expert interviewer generating relevant follow-up questions.", prompt, 300)
	if err != nil {
		logger.Log.Errorw("follow-up generation failed, using fallback", "error", err)
		return fallback
	}

	var questions []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &questions); err != nil || len(questions) == 0 {
		return fallback
	}
	return questions
}

// GenerateQuestions returns count interview questions for a topic. Cached
// lists are served from Redis; the LLM is primary and the fixed topic bank
// is the fallback.
func (svc *FeedbackService) GenerateQuestions(ctx context.Context, topic, difficulty string, count int) ([]string, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.GetQuestions(ctx, topic, difficulty, count); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	questions := svc.generateWithLLM(ctx, topic, difficulty, count)
	if len(questions) == 0 {
		questions = fallbackQuestions(topic, count)
	}

	if svc.cache != nil {
		if err := svc.cache.SetQuestions(ctx, topic, difficulty, count, questions); err != nil {
			logger.Log.Errorw("failed to cache questions", "topic", topic, "error", err)
		}
	}

	return questions, nil
}

func (svc *FeedbackService) generateWithLLM(ctx context.Context, topic, difficulty string, count int) []string {
	if svc.llm == nil {
		logger.Log.Infow("LLM not configured, using fallback questions")
		return nil
	}

	prompt := fmt.Sprintf(`Generate %d interview questions for the topic: %s
Difficulty level: %s

The questions should be relevant to the topic, appropriate for the difficulty
level, designed to assess both technical knowledge and soft skills, and a mix
of behavioral and situational questions.

Return as a JSON array of strings.`, count, topic, difficulty)

	text, err := svc.llm.Complete(ctx, "You are an expert interviewer creating comprehensive interview questions.", prompt, 800)
	if err != nil {
		logger.Log.Errorw("question generation failed, using fallback", "error", err)
		return nil
	}

	var questions []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &questions); err != nil {
		return nil
	}
	return questions
}

// AnalyzeComprehensive combines the verbal response with the emotion snapshot.
func (svc *FeedbackService) AnalyzeComprehensive(ctx context.Context, question, answer string, snapshot EmotionSnapshot) (*ComprehensiveFeedback, error) {
	if svc.llm == nil {
		logger.Log.Infow("LLM not configured, using fallback comprehensive analysis")
		return comprehensiveFallback(question, answer, snapshot), nil
	}

	prompt := fmt.Sprintf(`Analyze this candidate's response considering both the verbal answer and emotional indicators.

Question: %s
Answer: %s
Emotional State: %s (Confidence: %.2f)
Eye Contact Score: %.2f

Provide a comprehensive analysis in JSON format with the fields:
overall_score (0-100), communication_score (0-100), confidence_score (0-100),
emotional_stability (0-100), overall_feedback, strengths, improvements,
emotional_insights, specific_suggestions.`, question, answer, snapshot.Emotion, snapshot.Confidence, snapshot.EyeContactScore)

	text, err := svc.llm.Complete(ctx, "You are an expert interview coach providing comprehensive feedback based on both verbal and non-verbal cues.", prompt, 1000)
	if err != nil {
		logger.Log.Errorw("comprehensive analysis failed, using fallback", "error", err)
		return comprehensiveFallback(question, answer, snapshot), nil
	}

	jsonStr, ok := extractJSONObject(text)
	if !ok {
		return comprehensiveFallback(question, answer, snapshot), nil
	}

	var analysis ComprehensiveFeedback
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		logger.Log.Warnw("failed to parse LLM response, using fallback", "error", err)
		return comprehensiveFallback(question, answer, snapshot), nil
	}

	return &analysis, nil
}

// positiveKeywords earn the fallback heuristic a bonus when present in the answer.
var positiveKeywords = []string{"experience", "learned", "challenge", "success", "team", "project", "example"}

// heuristicScore is the deterministic fallback score: base 60, +10 for
// answers over 100 chars, +10 over 200, +5 per positive keyword capped at
// +20, capped at 100 overall.
func heuristicScore(answer string) int {
	score := 60
	if len(answer) > 100 {
		score += 10
	}
	if len(answer) > 200 {
		score += 10
	}

	lower := strings.ToLower(answer)
	keywordCount := 0
	for _, keyword := range positiveKeywords {
		if strings.Contains(lower, keyword) {
			keywordCount++
		}
	}
	score += min(keywordCount*5, 20)

	return min(score, 100)
}

// fallbackFeedback builds deterministic feedback when the LLM is unavailable.
func fallbackFeedback(question, answer string) *Feedback {
	score := heuristicScore(answer)

	strengths := []string{}
	if len(answer) > 50 {
		strengths = []string{"Attempted to answer the question", "Showed engagement"}
	}

	return &Feedback{
		Score:           score,
		OverallFeedback: "Your response shows good effort. Consider adding more specific examples and details to strengthen your answer.",
		Strengths:       strengths,
		Improvements: []string{
			"Provide more specific examples",
			"Add more detail to your response",
			"Use the STAR method (Situation, Task, Action, Result)",
		},
		CommunicationScore: score,
		RelevanceScore:     min(score+10, 100),
		ConfidenceScore:    min(score-10, 100),
		SpecificSuggestions: []string{
			"Try to include specific examples from your experience",
			"Structure your answer with clear points",
			"Practice speaking more confidently",
		},
	}
}

// comprehensiveFallback derives the confidence and stability scores from the
// emotion snapshot instead of the LLM.
func comprehensiveFallback(question, answer string, snapshot EmotionSnapshot) *ComprehensiveFeedback {
	score := heuristicScore(answer)

	emotion := snapshot.Emotion
	if emotion == "" {
		emotion = "Neutral"
	}
	confidenceScore := int(snapshot.Confidence * 100)

	insights := fmt.Sprintf("Your emotional state shows %s with %d%% confidence. ", strings.ToLower(emotion), confidenceScore)
	switch emotion {
	case "Happy", "Neutral":
		insights += "This indicates good composure during the interview."
	case "Sad", "Fear":
		insights += "Consider practicing relaxation techniques to improve confidence."
	default:
		insights += "Your emotional state is appropriate for the interview context."
	}

	strengths := []string{}
	if len(answer) > 50 {
		strengths = []string{"Attempted to answer the question", "Showed engagement"}
	}

	return &ComprehensiveFeedback{
		OverallScore:       score,
		CommunicationScore: score,
		ConfidenceScore:    confidenceScore,
		EmotionalStability: int(snapshot.EyeContactScore * 100),
		OverallFeedback:    "Your response shows good effort. Consider adding more specific examples and details to strengthen your answer.",
		Strengths:          strengths,
		Improvements: []string{
			"Provide more specific examples",
			"Add more detail to your response",
			"Use the STAR method (Situation, Task, Action, Result)",
		},
		EmotionalInsights: insights,
		SpecificSuggestions: []string{
			"Try to include specific examples from your experience",
			"Structure your answer with clear points",
			"Practice speaking more confidently",
			"Maintain good eye contact with the interviewer",
		},
	}
}

// fallbackQuestions is the fixed question bank keyed by topic name.
// Unknown topics get the behavioral set.
func fallbackQuestions(topic string, count int) []string {
	banks := map[string][]string{
		"technical": {
			"Describe a complex technical problem you solved recently.",
			"How do you approach debugging a difficult issue?",
			"What's your experience with version control and collaboration?",
			"How do you ensure code quality in your projects?",
			"Describe your process for learning new technologies.",
		},
		"behavioral": {
			"Tell me about a time you had to work with a difficult team member.",
			"Describe a situation where you had to meet a tight deadline.",
			"Give me an example of a project you're particularly proud of.",
			"How do you handle constructive criticism?",
			"Describe a time when you had to learn something new quickly.",
		},
		"leadership": {
			"Describe a time when you had to lead a team through a challenging project.",
			"How do you motivate team members who are struggling?",
			"Tell me about a difficult decision you had to make as a leader.",
			"How do you handle conflict within your team?",
			"Describe a time when you had to give difficult feedback.",
		},
	}

	questions, ok := banks[strings.ToLower(topic)]
	if !ok {
		questions = banks["behavioral"]
	}
	if count > len(questions) {
		count = len(questions)
	}
	return questions[:count]
}

// extractJSONObject returns the span from the first '{' to the last '}' in s,
// which is how JSON is recovered from chatty model output.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
