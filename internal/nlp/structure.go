package nlp

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// SentenceStructure is the grammatical analysis of a sentence.
type SentenceStructure struct {
	Subject string `json:"subject"`
	Verb    string `json:"verb"`
	Object  string `json:"object"`
	Tense   string `json:"tense"`
	Mood    string `json:"mood"`
}

// Tense values understood by the restructure prompt.
const (
	TensePresent        = "present"
	TensePast           = "past"
	TenseFuture         = "future"
	TensePresentPerfect = "present perfect"
	TensePastPerfect    = "past perfect"
	TenseFuturePerfect  = "future perfect"
)

// Mood values understood by the restructure prompt.
const (
	MoodIndicative  = "indicative"
	MoodImperative  = "imperative"
	MoodSubjunctive = "subjunctive"
	MoodConditional = "conditional"
)

var tenseLabels = map[string]string{
	TensePresent:        "वर्तमान काल",
	TensePast:           "भूतकाल",
	TenseFuture:         "भविष्य काल",
	TensePresentPerfect: "पूर्ण वर्तमान काल",
	TensePastPerfect:    "पूर्ण भूतकाल",
	TenseFuturePerfect:  "पूर्ण भविष्य काल",
}

var moodLabels = map[string]string{
	MoodIndicative:  "सूचक",
	MoodImperative:  "आज्ञार्थ",
	MoodSubjunctive: "संभावनार्थ",
	MoodConditional: "शर्तिया",
}

func vocabularyKey(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.NewReplacer("-", " ", "_", " ").Replace(value)
	return strings.Join(strings.Fields(value), " ")
}

// TenseLabel returns the Hindi label of a tense. Unknown values are
// returned as given.
func TenseLabel(tense string) string {
	if label, ok := tenseLabels[vocabularyKey(tense)]; ok {
		return label
	}
	return tense
}

// MoodLabel returns the Hindi label of a mood. Unknown values are returned
// as given.
func MoodLabel(mood string) string {
	if label, ok := moodLabels[vocabularyKey(mood)]; ok {
		return label
	}
	return mood
}

// ParseStructure decodes an analysis answer. Models sometimes wrap JSON in
// a fenced code block; the fence is stripped first.
func ParseStructure(raw string) (SentenceStructure, error) {
	var s SentenceStructure

	body := stripCodeFence(raw)
	if body == "" {
		return s, errors.Mark(errors.New("empty analysis response"), ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(body), &s); err != nil {
		return SentenceStructure{}, errors.Mark(
			errors.Wrapf(err, "failed to parse analysis response %q", body),
			ErrMalformedResponse)
	}

	return s, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
