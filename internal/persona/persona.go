// Package persona builds the prompt that makes the model answer as the
// configured person.
package persona

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ahmednasr/askme/internal/models"
)

// DefaultInstructions commands a first‑person, concise, friendly answer with
// a few emojis and no meta‑commentary.
const DefaultInstructions = "Now, you are me and I am your buddy. I will ask a few questions about myself and you answer just like me. " +
	"No extra stuff or questions. Just answer like me. Just assume you are me. " +
	"Also, add some emojis to show your emotion. " +
	"Answer like I would: be concise, friendly, and use a little humor if appropriate. " +
	"Here are the questions:"

// Persona is the fixed identity the model impersonates.
type Persona struct {
	Name         string
	Bio          string
	Instructions string
}

// New returns a Persona with the default instruction block.
func New(bio string) Persona {
	return Persona{Bio: bio, Instructions: DefaultInstructions}
}

// Load reads a YAML persona file. A non‑empty bio overrides the file's bio.
func Load(path, bio string) (Persona, error) {
	p := New(bio)
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona file: %w", err)
	}
	var f models.PersonaFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Persona{}, fmt.Errorf("parse persona file %s: %w", path, err)
	}

	p.Name = f.Name
	if p.Bio == "" {
		p.Bio = f.Bio
	}
	if strings.TrimSpace(f.Instructions) != "" {
		p.Instructions = strings.TrimSpace(f.Instructions)
	}
	if p.Bio == "" {
		return Persona{}, fmt.Errorf("persona file %s has no bio", path)
	}
	return p, nil
}

// Prompt composes "{bio}. {instructions}\n{question}". The bio and the
// question are embedded verbatim.
func (p Persona) Prompt(question string) string {
	instructions := p.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}

	var sb strings.Builder
	sb.Grow(len(p.Bio) + len(instructions) + len(question) + 3)
	sb.WriteString(p.Bio)
	sb.WriteString(". ")
	sb.WriteString(instructions)
	sb.WriteString("\n")
	sb.WriteString(question)
	return sb.String()
}
