package views

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var profileYAML []byte

// Interest is one card on the about page.
type Interest struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Profile is the content of the about page.
type Profile struct {
	Name      string     `yaml:"name"`
	Tagline   string     `yaml:"tagline"`
	Bio       string     `yaml:"bio"`
	Interests []Interest `yaml:"interests"`
}

// LoadProfile decodes the embedded about-page profile.
func LoadProfile() (Profile, error) { return ParseProfile(profileYAML) }

// ParseProfile decodes a profile document. Unknown keys are rejected.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if p.Name == "" {
		return Profile{}, fmt.Errorf("parse profile: name is required")
	}
	return p, nil
}
