package translator

import (
	"strings"
	"testing"
)

func TestBuildSystemInstruction_InformalTone(t *testing.T) {
	instruction := BuildSystemInstruction(false, nil)

	if !strings.Contains(instruction, "natural at malinaw") {
		t.Error("informal instruction should use the neutral tone line")
	}
	if strings.Contains(instruction, "magalang at pormal") {
		t.Error("informal instruction must not use the formal tone line")
	}
}

func TestBuildSystemInstruction_FormalTone(t *testing.T) {
	instruction := BuildSystemInstruction(true, nil)

	if !strings.Contains(instruction, "magalang at pormal") {
		t.Error("formal instruction should use the polite tone line")
	}
}

func TestBuildSystemInstruction_GlossaryTerms(t *testing.T) {
	instruction := BuildSystemInstruction(false, []string{"Blue Butterfly", " Jeet Kune Do ", ""})

	if !strings.Contains(instruction, "“Blue Butterfly”") {
		t.Errorf("glossary term missing from instruction:\n%s", instruction)
	}
	if !strings.Contains(instruction, "“Jeet Kune Do”") {
		t.Error("glossary term should be trimmed and included")
	}
	if !strings.Contains(instruction, "Huwag isalin") {
		t.Error("glossary guidance line missing")
	}
}

func TestBuildSystemInstruction_NoGlossaryLine(t *testing.T) {
	instruction := BuildSystemInstruction(false, []string{"  ", ""})

	if strings.Contains(instruction, "Huwag isalin ang mga sumusunod") {
		t.Error("blank glossary entries must not produce a glossary line")
	}
}

func TestUserPrompt_WrapsChunk(t *testing.T) {
	prompt := UserPrompt("Hello world.")

	if !strings.Contains(prompt, "Isalin ang sumusunod") {
		t.Error("user prompt missing the translation directive")
	}
	if !strings.Contains(prompt, "Hello world.") {
		t.Error("user prompt missing the chunk text")
	}
}

func TestApplyContext(t *testing.T) {
	base := BuildSystemInstruction(false, nil)

	if got := applyContext(base, ""); got != base {
		t.Error("empty context must leave the instruction unchanged")
	}

	got := applyContext(base, "huling mga salita ng nakaraang salin")
	if !strings.Contains(got, "KONTEKSTO") {
		t.Error("context block header missing")
	}
	if !strings.Contains(got, "huling mga salita ng nakaraang salin") {
		t.Error("context snippet missing")
	}
	if !strings.HasPrefix(got, base) {
		t.Error("context must be appended after the instruction")
	}
}
