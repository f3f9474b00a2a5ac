package validator_test

import (
	"testing"

	"github.com/valpere/tagasalin/internal/validator"
)

func TestIsTagalog_EmptyText(t *testing.T) {
	v := validator.New()
	ok, err := v.IsTagalog("   ")
	if ok {
		t.Error("empty translation must not validate")
	}
	if err == nil {
		t.Error("expected error for empty translation")
	}
}

func TestIsTagalog_ShortTextPasses(t *testing.T) {
	v := validator.New()
	ok, err := v.IsTagalog("Oo.")
	if !ok || err != nil {
		t.Errorf("short text should pass without validation, got ok=%v err=%v", ok, err)
	}
}

func TestIsTagalog_TagalogPasses(t *testing.T) {
	v := validator.New()
	ok, err := v.IsTagalog("Ang mga pasyente ay dapat uminom ng gamot dalawang beses sa isang araw kasama ang pagkain.")
	if !ok || err != nil {
		t.Errorf("Tagalog text should validate, got ok=%v err=%v", ok, err)
	}
}

func TestIsTagalog_EnglishFails(t *testing.T) {
	v := validator.New()
	ok, err := v.IsTagalog("This translation never happened and the output is still entirely in English prose.")
	if ok {
		t.Error("English output should fail validation")
	}
	if err == nil {
		t.Error("expected error naming the mismatch")
	}
}
