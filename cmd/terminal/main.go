// Terminal frontend for the tutor: generates one quiz from the
// configured source text, asks each question on stdin, and scores the
// session. Mostly a development aid; the HTTP server is the product.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tutor-ai/backend/internal/config"
	"github.com/tutor-ai/backend/internal/source"
	"github.com/tutor-ai/backend/internal/tutor"
)

func main() {
	kind := flag.String("kind", "short_answer", "question kind: short_answer, multiple_choice, or true_false")
	count := flag.Int("count", 5, "number of questions to ask")
	flag.Parse()

	cfg := config.Load()

	var llm tutor.LLMClient
	if cfg.MockGenerator {
		llm = tutor.NewMockClient()
	} else {
		llm = tutor.NewAPIClient(cfg.AnthropicModel, cfg.AnthropicAPIKey, cfg.Temperature)
	}
	t := tutor.New(llm, cfg.Topic)

	passage, err := source.NewStaticProvider().Fetch(context.Background(), "", "", "")
	if err != nil {
		log.Fatalf("Failed to load source text: %v", err)
	}
	text := passage.Text

	ctx := context.Background()
	var questions []tutor.Question
	switch *kind {
	case "short_answer":
		questions, err = t.ShortAnswerQuestions(ctx, text, *count)
	case "multiple_choice":
		questions, err = t.MultipleChoiceQuestions(ctx, text, *count)
	case "true_false":
		questions, err = t.TrueFalseQuestions(ctx, text, *count)
	default:
		log.Fatalf("Unknown question kind %q", *kind)
	}
	if err != nil {
		log.Fatalf("Failed to generate questions: %v", err)
	}
	if len(questions) == 0 {
		log.Fatal("The generator produced no usable questions")
	}

	scorer := tutor.NewSessionScorer(len(questions), cfg.RequiredAccuracy, cfg.RecommendedAccuracy)
	reader := bufio.NewReader(os.Stdin)

	for _, q := range questions {
		fmt.Println("\n\nPlease answer the following question:")
		fmt.Println(q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("%s) %s\n", tutor.NumberToLetters(i+1), opt)
		}
		fmt.Print(": ")

		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(answer)

		var result tutor.EvaluationResult
		if q.Kind == tutor.KindShortAnswer {
			result = t.EvaluateShortAnswer(ctx, text, q.Prompt, answer)
		} else {
			result, err = t.EvaluateChoice(ctx, tutor.EncodeToken(q), answer)
			if err != nil {
				log.Fatalf("Evaluation failed: %v", err)
			}
			if result.Score == 10 {
				fmt.Println("Congrats! You got it correct.")
			} else {
				fmt.Printf("Sorry, wrong answer! The correct answer was %s.\n", tutor.NumberToLetters(q.Correct))
			}
		}

		fmt.Println(result.Explanation)
		fmt.Printf("Your score was: %d\n", result.Score)
		scorer.Record(result.Score)
	}

	fmt.Printf("\nYour total score was %d/%d.\n", scorer.Total(), scorer.MaxScore())
	switch scorer.Outcome() {
	case tutor.OutcomeFail:
		fmt.Println("You failed the segment questions.")
	case tutor.OutcomePassWithReview:
		fmt.Println("You passed the segment questions, but it's recommended that you review some more.")
	default:
		fmt.Println("Congrats! You passed this segment's questions.")
	}
}
