package nlp

import "fmt"

const systemPrompt = "You are an expert Bangla and Hindi linguist. Answer with exactly what is asked for and nothing else."

func idiomPrompt(idiom string) string {
	return fmt.Sprintf(`Translate the following Bangla idiom to Hindi, preserving its meaning and cultural context as much as possible:

Bangla Idiom: %s

Return only the Hindi translation, no other text.`, idiom)
}

func analysisPrompt(sentence string) string {
	return fmt.Sprintf(`Analyze the following Bangla sentence and return a JSON object with the keys "subject", "verb", "object", "tense" and "mood".
Use one of present, past, future, present perfect, past perfect, future perfect for "tense" and one of indicative, imperative, subjunctive, conditional for "mood".

Sentence: %s

Return only the JSON object, no other text.`, sentence)
}

func restructurePrompt(sentence string, s SentenceStructure) string {
	return fmt.Sprintf(`Translate the following Bangla sentence to Hindi, considering its structure:

Bangla: %s
Subject: %s
Verb: %s
Object: %s
Tense: %s
Mood: %s

Ensure the Hindi translation maintains the same structure, tense, and mood. Return only the Hindi translation, no other text.`,
		sentence, s.Subject, s.Verb, s.Object, TenseLabel(s.Tense), MoodLabel(s.Mood))
}

func refinePrompt(text string) string {
	return fmt.Sprintf(`Transcribe the following Bangla text to Hindi, maintaining the original meaning and grammatical structure as closely as possible. Parts of it are already in Devanagari.

Bangla: %s

Hindi:`, text)
}

func improvePrompt(pairs []Pair) string {
	return "Fine-tune the Bangla to Hindi transcription model with the following data:\n\n" + FormatCorpus(pairs)
}
