package models

// PersonaFile mirrors the optional YAML persona definition.
//
//	name: Ahmed
//	bio: I'm a software engineer from Cairo who loves tacos.
//	instructions: ""   # empty keeps the built‑in instruction block
type PersonaFile struct {
	Name         string `yaml:"name"`
	Bio          string `yaml:"bio"`
	Instructions string `yaml:"instructions"`
}
