package symptom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxSymptomsLength = 2000
	MaxLanguageLength = 30
	DefaultLanguage   = "english"
)

var (
	ErrEmptySymptoms   = errors.New("symptoms are required")
	ErrSymptomsTooLong = errors.New("symptoms exceed maximum length")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrAdvisorDisabled = errors.New("symptom advisor is not configured")
)

// Advisor turns a prompt into free-text medical guidance.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

type Query struct {
	symptoms string
	language string
}

func NewQuery(symptoms, language string) (Query, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return Query{}, ErrEmptySymptoms
	}
	if utf8.RuneCountInString(symptoms) > MaxSymptomsLength {
		return Query{}, ErrSymptomsTooLong
	}

	language = strings.TrimSpace(language)
	if language == "" {
		language = DefaultLanguage
	}
	if utf8.RuneCountInString(language) > MaxLanguageLength || strings.ContainsAny(language, "\n\r<>") {
		return Query{}, ErrInvalidLanguage
	}
	return Query{symptoms: symptoms, language: language}, nil
}

func (q Query) Symptoms() string { return q.symptoms }
func (q Query) Language() string { return q.language }

const promptTemplate = `Act as a medical assistant for rural Indian patients. The user has described these symptoms: %s

Please provide a comprehensive but easy-to-understand analysis in %s with the following structure:

1. **Possible Conditions**: List 2-3 most likely common conditions (but emphasize this is NOT a diagnosis)
2. **Immediate First Aid**: Practical advice for temporary relief
3. **Home Remedies**: Traditional, safe home remedies common in Indian households
4. **When to See a Doctor**: Clear red flags and when to seek immediate medical attention
5. **Prevention Tips**: How to avoid similar issues in future

IMPORTANT GUIDELINES:
- Use simple language suitable for people with limited medical knowledge
- Focus on practical advice that can be implemented in rural settings
- Mention if any symptoms could be serious and require urgent care
- Always emphasize that this is not a substitute for professional medical advice
- Include culturally appropriate examples and remedies
- Structure the response with clear headings and bullet points for readability

Format the response in HTML-like tags but without actual HTML:
<header>Health Advice</header>
<section>[content]</section>
<subsection>[subheading]</subsection>
<point>[bullet point]</point>
<warning>[important warning]</warning>
<doctor>[when to see doctor]</doctor>`

func BuildPrompt(q Query) string {
	return fmt.Sprintf(promptTemplate, q.symptoms, q.language)
}
