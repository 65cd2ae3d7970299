package tui

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateNickname(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		err      error
	}{
		{"ada", "ada", nil},
		{"  grace  ", "grace", nil},
		{"Ünïcødé", "Ünïcødé", nil},
		{"", "", ErrNicknameEmpty},
		{"   ", "", ErrNicknameEmpty},
		{strings.Repeat("x", MaxNicknameLength), strings.Repeat("x", MaxNicknameLength), nil},
		{strings.Repeat("x", MaxNicknameLength+1), "", ErrNicknameTooLong},
		{"bad\x07name", "", ErrNicknameNotPrint},
	}

	for _, tc := range tests {
		got, err := ValidateNickname(tc.input)
		if !errors.Is(err, tc.err) {
			t.Errorf("ValidateNickname(%q) error = %v, expected %v", tc.input, err, tc.err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ValidateNickname(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNicknamePromptRejectsBlank(t *testing.T) {
	p := newNicknamePrompt("   ")
	if _, ok := p.submit(); ok {
		t.Fatal("blank nickname accepted")
	}
	if p.input.Placeholder != ErrNicknameEmpty.Error() {
		t.Errorf("placeholder = %q, expected the error message", p.input.Placeholder)
	}

	p.input.SetValue("ada")
	name, ok := p.submit()
	if !ok || name != "ada" {
		t.Errorf("submit() = %q, %v", name, ok)
	}
}
