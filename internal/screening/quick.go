package screening

import "sort"

// QuickQuestions are the canned chat prompts offered as buttons
var QuickQuestions = map[string]string{
	"role":      "What job role am I best suited for?",
	"skills":    "What skills should I learn to improve my chances?",
	"resume":    "How can I improve my resume?",
	"interview": "How should I prepare for interviews for this role?",
}

// QuickQuestionKeys returns the quick question keys in a stable order
func QuickQuestionKeys() []string {
	keys := make([]string, 0, len(QuickQuestions))
	for k := range QuickQuestions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HelpText is shown by the help action
const HelpText = `How to use the resume screener:
1. Choose or drop your resume. Only PDF files are accepted.
2. Paste the job description (at least 50 characters).
3. Press "Analyze Resume". Analysis can take up to a minute; you can cancel it.
4. Review your predicted role, matched skills and missing skills.
5. Ask the assistant about your results, or use a quick question.
Use "Demo" to see a sample report and "Reset" to start over.`
