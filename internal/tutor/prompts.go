package tutor

import (
	"fmt"
	"strings"
)

// SystemMessage frames every generation request.
const SystemMessage = "You are a kind and helpful tutor. Answer in plain text with no markdown formatting."

// TemplateID names one intent the tutor can ask the text-generation
// service to fulfil.
type TemplateID string

const (
	TemplateSummarize               TemplateID = "summarize"
	TemplateShortAnswerQuestions    TemplateID = "shortanswer_questions"
	TemplateMultipleChoiceQuestions TemplateID = "multiplechoice_questions"
	TemplateTrueFalseQuestions      TemplateID = "truefalse_questions"
	TemplateShortAnswerEvaluation   TemplateID = "shortanswer_evaluation"
	TemplateChoiceExplanation       TemplateID = "choice_explanation"
)

// PromptRegistry maps template IDs to parameterized prompt text.
// Parameters appear as {name} placeholders; the tutoring topic is
// baked in at construction so callers only supply per-request values.
type PromptRegistry struct {
	templates map[TemplateID]string
}

func NewPromptRegistry(topic string) *PromptRegistry {
	templates := map[TemplateID]string{
		TemplateSummarize: "You are a tutor teaching a student about {topic}. Summarize the following text:\n\n{text}\n\nSummary:",

		TemplateShortAnswerQuestions: "You are a tutor teaching students {topic}, tasked with asking students {count} questions about the following text:\n\n{text}\n\nQuestions should be separated by a new line. Questions:",

		TemplateMultipleChoiceQuestions: "You are a tutor teaching students {topic}. Create {count} multiple-choice questions about the following text:\n\n{text}\n\n" +
			"Format every question exactly like this, with no extra commentary:\n" +
			"Question 1: <the question>\n" +
			"A) <first option>\n" +
			"B) <second option>\n" +
			"C) <third option>\n" +
			"D) <fourth option>\n" +
			"Correct Answer: <A, B, C, or D>\n\nQuestions:",

		TemplateTrueFalseQuestions: "You are a tutor teaching students {topic}. Create {count} true-or-false questions about the following text:\n\n{text}\n\n" +
			"Format every question exactly like this, with no extra commentary:\n" +
			"Question 1: <the statement>\n" +
			"T: True\n" +
			"F: False\n" +
			"Correct Answer: <T or F>\n\nQuestions:",

		TemplateShortAnswerEvaluation: "You are a tutor teaching a student about {topic}. Use the following text:\n\n{text}\n\n" +
			"To evaluate the following question and answer. Please evaluate the answer based on the text with a score of 1-10 " +
			"and an explanation for your score, quoting the text. Question:\n\n{question}\n\nStudent's answer:\n\n{answer}\n\n" +
			"The template should look like this: Score:\nEvaluation:",

		TemplateChoiceExplanation: "You are a tutor teaching a student about {topic}. The question was:\n\n{question}\n\n" +
			"The correct answer is: {correct}\nThe student answered: {submitted}\n\n" +
			"Briefly justify why the correct answer is right and, if the student's answer differs, explain why it is wrong. Explanation:",
	}

	for id, tmpl := range templates {
		templates[id] = strings.ReplaceAll(tmpl, "{topic}", topic)
	}
	return &PromptRegistry{templates: templates}
}

// Render substitutes the given parameters into the template's {name}
// placeholders. Unknown template IDs are an error; missing parameters
// simply leave their placeholder in place.
func (r *PromptRegistry) Render(id TemplateID, params map[string]string) (string, error) {
	tmpl, ok := r.templates[id]
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", id)
	}
	for name, value := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	return tmpl, nil
}
