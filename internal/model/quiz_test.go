package model

import "testing"

func TestCorrectIndex(t *testing.T) {
	four := []string{"Berlin", "Paris", "Rome", "Madrid"}
	cases := []struct {
		name    string
		answer  string
		options []string
		want    int
		ok      bool
	}{
		{"first option", "A", four, 0, true},
		{"last option", "D", four, 3, true},
		{"lowercase accepted", "b", four, 1, true},
		{"surrounding whitespace", " C ", four, 2, true},
		{"letter beyond options", "C", []string{"yes", "no"}, 0, false},
		{"empty answer", "", four, 0, false},
		{"multi character", "AB", four, 0, false},
		{"digit", "2", four, 0, false},
		{"no options", "A", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{Options: tc.options, CorrectAnswer: tc.answer}
			got, ok := q.CorrectIndex()
			if ok != tc.ok || (ok && got != tc.want) {
				t.Fatalf("CorrectIndex() = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}
