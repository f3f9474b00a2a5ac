package translator

import (
	"fmt"
	"strings"
)

const (
	// DefaultModel balances quality and cost for long-form translation.
	DefaultModel = "gpt-4.1-mini"

	// DefaultTemperature keeps the oracle close to deterministic.
	DefaultTemperature float32 = 0.2
)

// UserPrompt wraps a chunk in the fixed translation directive sent as the
// user message.
func UserPrompt(chunk string) string {
	return fmt.Sprintf("Isalin ang sumusunod na teksto sa Tagalog (Filipino):\n\n%s\n", chunk)
}

// BuildSystemInstruction renders the Tagalog translation instruction.
// formal switches the tone line to the polite register; glossary lists terms
// the oracle must keep untranslated with their exact spelling.
func BuildSystemInstruction(formal bool, glossary []string) string {
	tone := "Gamitin ang **natural at malinaw** na Tagalog (Filipino) na pangkalahatang mambabasa,"
	if formal {
		tone = "Gamitin ang **magalang at pormal** na Tagalog (Filipino),"
	}

	var sb strings.Builder
	sb.WriteString("Ikaw ay isang **propesyonal at lubos na maingat na tagasalin**.\n")
	sb.WriteString("Layunin: tumpak, kumpleto, at idiomatic na pagsasalin sa Tagalog (Filipino), may tamang daloy at konteksto.\n")
	sb.WriteString("Mga panuntunan:\n")
	sb.WriteString("- " + tone + " at panatilihin ang kahulugan, tono, at intensyon ng orihinal.\n")
	sb.WriteString("- Iwasan ang literal na salin kapag hindi natural; gumamit ng katumbas na idyoma sa Filipino.\n")
	sb.WriteString("- Panatilihin: mga pangalan, terminong teknikal, code blocks, numero, unit, URL, at email.\n")
	sb.WriteString("- Ayusin ang bantas at baybay upang maging malinis at madaling basahin.\n")
	sb.WriteString("- Huwag magdagdag o magbawas ng impormasyon; huwag magkomento—**pagsasalin lamang ang ilalabas**.\n")
	sb.WriteString("- Gumamit ng “ni/sa/kay/kina” at iba pang pang-ukol nang wasto; iwasan ang sobrang pag-ingles.\n")
	sb.WriteString("- Kung may di-malinaw, isalin sa pinaka-makatwirang paraan batay sa konteksto.\n")

	if terms := cleanGlossary(glossary); len(terms) > 0 {
		sb.WriteString("- Huwag isalin ang mga sumusunod (panatilihing eksakto ang baybay): ")
		for i, term := range terms {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("“" + term + "”")
		}
		sb.WriteString(".\n")
	}

	sb.WriteString("Output: **Isang kumpletong salin sa Tagalog**; panatilihin ang talata/format ng orihinal.")
	return sb.String()
}

// applyContext appends a sliding-window continuity snippet to the system
// instruction. The snippet is marked as already translated so the oracle
// does not emit it again.
func applyContext(instruction, previousContext string) string {
	if previousContext == "" {
		return instruction
	}
	return fmt.Sprintf(
		"%s\n\nKONTEKSTO (naisalin na, huwag ulitin; gamitin lamang para sa tuloy-tuloy na daloy):\n...%s",
		instruction, previousContext)
}

func cleanGlossary(glossary []string) []string {
	terms := make([]string, 0, len(glossary))
	for _, t := range glossary {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
