//go:build unit

package symptom_test

import (
	"strings"
	"testing"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/symptom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	cases := []struct {
		name     string
		symptoms string
		language string
		wantLang string
		errIs    error
	}{
		{name: "defaults to english", symptoms: "fever and cough", wantLang: "english"},
		{name: "keeps requested language", symptoms: "headache", language: " hindi ", wantLang: "hindi"},
		{name: "blank symptoms", symptoms: "   ", errIs: symptom.ErrEmptySymptoms},
		{name: "too long", symptoms: strings.Repeat("a", symptom.MaxSymptomsLength+1), errIs: symptom.ErrSymptomsTooLong},
		{name: "max length", symptoms: strings.Repeat("a", symptom.MaxSymptomsLength), wantLang: "english"},
		{name: "language with markup", symptoms: "rash", language: "<doctor>", errIs: symptom.ErrInvalidLanguage},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := symptom.NewQuery(c.symptoms, c.language)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantLang, q.Language())
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	q, err := symptom.NewQuery("  stomach pain since morning ", "tamil")
	require.NoError(t, err)

	prompt := symptom.BuildPrompt(q)

	assert.Contains(t, prompt, "symptoms: stomach pain since morning\n")
	assert.Contains(t, prompt, "analysis in tamil with")
	for _, section := range []string{"Possible Conditions", "Immediate First Aid", "Home Remedies", "When to See a Doctor", "Prevention Tips"} {
		assert.Contains(t, prompt, section)
	}
	for _, tag := range []string{"<header>", "<section>", "<subsection>", "<point>", "<warning>", "<doctor>"} {
		assert.Contains(t, prompt, tag)
	}
}
