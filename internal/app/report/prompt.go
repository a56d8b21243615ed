// Package report holds the fixed instruction template sent to the text
// generation service together with a consultation transcript.
package report

import (
	"fmt"
	"strings"
)

// Sections lists the headings the template asks the model to produce, in order.
var Sections = []string{
	"Symptome",
	"Diagnose oder Verdachtsdiagnose",
	"Therapieempfehlung",
	"Abschluss",
}

// Rules constrain the wording of the generated report.
var Rules = []string{
	"Keine Namen",
	`Nutze "der Patient" oder "die Patientin"`,
	"Kein Smalltalk",
	`Kein "ich empfehle", sondern "Es wird empfohlen …"`,
}

const (
	persona = "Du bist ein medizinischer Dokumentationsassistent. " +
		"Erstelle aus folgendem Transkript einen strukturierten ärztlichen Befundbericht."
	style = "Stil: medizinisch, sachlich."

	// TranscriptMarker precedes the transcript in the prompt.
	TranscriptMarker = "TRANSKRIPT:"
)

// BuildPrompt returns the single-turn prompt for transcript.
func BuildPrompt(transcript string) string {
	var b strings.Builder

	b.WriteString(persona)
	b.WriteString("\n\nRegeln:\n")
	for _, rule := range Rules {
		fmt.Fprintf(&b, "- %s\n", rule)
	}

	b.WriteString("\nStruktur:\n")
	for i, section := range Sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, section)
	}

	b.WriteString("\n")
	b.WriteString(style)
	b.WriteString("\n\n")
	b.WriteString(TranscriptMarker)
	b.WriteString("\n")
	b.WriteString(transcript)

	return b.String()
}
