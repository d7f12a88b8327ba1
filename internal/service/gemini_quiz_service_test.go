package service

import (
	"context"
	"strings"
	"testing"

	"quizhub/config"
	"quizhub/internal/apperr"
	"quizhub/internal/dto"
)

const generatedQuizJSON = `[
  {
    "question": "What is the capital of France?",
    "options": ["Berlin", "Paris", "Rome", "Madrid"],
    "correct_answer": "B"
  },
  {
    "question": "What is 2+2?",
    "options": ["3", "4", "5", "6"],
    "correct_answer": "B"
  }
]`

func TestParseGeneratedQuizPlainJSON(t *testing.T) {
	questions, err := parseGeneratedQuiz(generatedQuizJSON)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "B" || questions[0].Options[1] != "Paris" {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
}

func TestParseGeneratedQuizStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + generatedQuizJSON + "\n```"
	questions, err := parseGeneratedQuiz(fenced)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	// Bare fence without language tag.
	questions, err = parseGeneratedQuiz("```\n" + generatedQuizJSON + "\n```")
	if err != nil || len(questions) != 2 {
		t.Fatalf("bare fence parse failed: %v", err)
	}
}

func TestParseGeneratedQuizRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "sorry, I cannot do that"},
		{"empty array", "[]"},
		{"missing text", `[{"question": "", "options": ["a", "b"], "correct_answer": "A"}]`},
		{"letter outside options", `[{"question": "q", "options": ["a", "b"], "correct_answer": "D"}]`},
		{"non letter answer", `[{"question": "q", "options": ["a", "b"], "correct_answer": "2"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseGeneratedQuiz(tc.raw); err == nil {
				t.Fatalf("expected parse error")
			}
		})
	}
}

func TestBuildGenerationPrompt(t *testing.T) {
	prompt := buildGenerationPrompt("The Eiffel Tower is in Paris.", 3, "multiple choice", "easy")
	for _, want := range []string{
		"easy difficulty multiple choice quiz with 3 questions",
		"The Eiffel Tower is in Paris.",
		"'correct_answer' (the letter A, B, C, or D)",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateGuardsInput(t *testing.T) {
	svc, err := NewGeminiQuizService(&config.Config{})
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	_, err = svc.Generate(context.Background(), dto.GenerateQuizRequest{Content: "   "})
	if !apperr.Is(err, apperr.InvalidInput) {
		t.Fatalf("expected InvalidInput for blank content, got %v", err)
	}

	// No API key configured, so the client was never built.
	_, err = svc.Generate(context.Background(), dto.GenerateQuizRequest{Content: "some text"})
	if !apperr.Is(err, apperr.StoreUnavailable) {
		t.Fatalf("expected StoreUnavailable without a client, got %v", err)
	}
}
