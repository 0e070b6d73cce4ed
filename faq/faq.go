package faq

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FAQ is a single question/answer pair from the knowledge base.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Default returns the built-in FAQ list used when no seed file is given.
func Default() []FAQ {
	return []FAQ{
		{
			Question: "How do I reset my password?",
			Answer:   "Open the sign-in page, choose \"Forgot password\", and follow the link we email you. The link expires after 24 hours.",
		},
		{
			Question: "Can I change the email address on my account?",
			Answer:   "Yes. Go to Account Settings, select Email, and confirm the change from both the old and the new address.",
		},
		{
			Question: "How do I cancel my subscription?",
			Answer:   "You can cancel at any time from the Billing page. Your plan stays active until the end of the current billing period.",
		},
		{
			Question: "Do you offer refunds?",
			Answer:   "We refund annual plans within 30 days of purchase. Monthly plans are not refunded, but cancelling stops future charges.",
		},
		{
			Question: "Is there an API I can use?",
			Answer:   "Yes, every paid plan includes API access. Generate a token under Developer Settings and see the API reference for examples.",
		},
		{
			Question: "How do I contact support?",
			Answer:   "Email support@example.com or use the chat widget in the bottom right corner. We answer within one business day.",
		},
	}
}

// LoadFile reads a YAML list of question/answer pairs to seed instead of
// the built-in list. Entries with a blank question or answer are skipped.
func LoadFile(path string) ([]FAQ, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ file %s: %w", path, err)
	}

	var faqs []FAQ
	if err := yaml.Unmarshal(fileBytes, &faqs); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ file %s: %w", path, err)
	}

	kept := make([]FAQ, 0, len(faqs))
	for _, f := range faqs {
		f.Question = strings.TrimSpace(f.Question)
		f.Answer = strings.TrimSpace(f.Answer)
		if f.Question == "" || f.Answer == "" {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no FAQs to seed in %s", path)
	}

	return kept, nil
}
