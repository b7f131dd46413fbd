package portfolio

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"
)

// KPI is one metric box under a panel.
type KPI struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Note  string `yaml:"note,omitempty"`
}

// Panel is one half of a before/after pair: a diagram (with image
// fallback), a bullet list and optional KPI boxes. Bullets are markdown.
type Panel struct {
	Heading  string   `yaml:"heading"`
	Diagram  string   `yaml:"diagram"`
	Fallback string   `yaml:"fallback,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Bullets  []string `yaml:"bullets"`
	KPIs     []KPI    `yaml:"kpis,omitempty"`
}

// Case is one case study. Flow and Highlights are markdown blocks shown
// under the panels.
type Case struct {
	Title      string  `yaml:"title"`
	Panels     []Panel `yaml:"panels"`
	FlowTitle  string  `yaml:"flow_title,omitempty"`
	Flow       string  `yaml:"flow,omitempty"`
	HighTitle  string  `yaml:"highlights_title,omitempty"`
	Highlights string  `yaml:"highlights,omitempty"`
}

// Content is everything the page shows, loaded from the content file or
// falling back to the built-in case studies.
type Content struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline,omitempty"`
	Hint    string `yaml:"hint,omitempty"`
	Cases   []Case `yaml:"cases"`
	Resume  string `yaml:"resume,omitempty"`
}

// defaultHeight is the diagram frame height when a panel sets none.
const defaultHeight = 640

// LoadContent reads the content file, or returns the built-in content
// when the file does not exist.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultContent(), nil
		}
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	var c Content
	if err := yamlv3.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	c.fillDefaults()
	return &c, nil
}

// Save writes the content to the given YAML file path.
func (c *Content) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing content to %s: %w", path, err)
	}
	return nil
}

func (c *Content) fillDefaults() {
	if c.Title == "" {
		c.Title = "Architecture Improvement"
	}
	for i := range c.Cases {
		for j := range c.Cases[i].Panels {
			if c.Cases[i].Panels[j].Height <= 0 {
				c.Cases[i].Panels[j].Height = defaultHeight
			}
		}
	}
}
