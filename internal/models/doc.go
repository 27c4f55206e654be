// Package models lists the OpenAI chat models that can serve as the
// transliteration collaborator for the configured API key.
package models
