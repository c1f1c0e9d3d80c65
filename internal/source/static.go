package source

import "context"

// defaultPassage is the bundled psychology excerpt quizzes fall back
// to when no vector database is configured.
const defaultPassage = `According to the American Psychiatric Association, a psychological disorder, or mental disorder, is "a syndrome characterized by clinically significant disturbance in an individual's cognition, emotion regulation, or behavior that reflects a dysfunction in the psychological, biological, or developmental processes underlying mental functioning. Mental disorders are usually associated with significant distress in social, occupational, or other important activities" (2013). Psychopathology is the study of psychological disorders, including their symptoms, etiology (i.e., their causes), and treatment. The term psychopathology can also refer to the manifestation of a psychological disorder. Although consensus can be difficult, it is extremely important for mental health professionals to agree on what kinds of thoughts, feelings, and behaviors are truly abnormal in the sense that they genuinely indicate the presence of psychopathology. Certain patterns of behavior and inner experience can easily be labeled as abnormal and clearly signify some kind of psychological disturbance. The person who washes their hands 40 times per day and the person who claims to hear the voices of demons exhibit behaviors and inner experiences that most would regard as abnormal: beliefs and behaviors that suggest the existence of a psychological disorder. But, consider the nervousness a young man feels when talking to an attractive person or the loneliness and longing for home a first-year student experiences during her first semester of college - these feelings may not be regularly present, but they fall in the range of normal. So, what kinds of thoughts, feelings, and behaviors represent a true psychological disorder? Psychologists work to distinguish psychological disorders from inner experiences and behaviors that are merely situational, idiosyncratic, or unconventional.`

// StaticProvider serves the bundled passage regardless of the lookup.
type StaticProvider struct {
	passage Passage
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		passage: Passage{
			Title: "Psychopathology",
			Text:  defaultPassage,
		},
	}
}

func (p *StaticProvider) Fetch(ctx context.Context, collection, key, value string) (*Passage, error) {
	passage := p.passage
	return &passage, nil
}
