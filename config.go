package autolink

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/chrisweb/autolink/dom"
)

/*
Pipelines driven by configuration files describe the transform in YAML:

    behavior: before
    group:
      tag: div
      properties: { className: [heading-group] }
    content:
      - tag: span
        properties: { className: [icon, icon-link] }
    properties:
      ariaLabel: "Permalink to this section"
    test:
      tags: [h2, h3]
      expr: "parent != 'blockquote'"

Generator functions have no YAML form; file-based configurations are
limited to static templates.
*/

type yamlElement struct {
	Tag        string         `yaml:"tag"`
	Properties map[string]any `yaml:"properties"`
	Text       string         `yaml:"text"`
	Children   []yamlElement  `yaml:"children"`
}

type yamlTest struct {
	Tags []string `yaml:"tags"`
	Expr string   `yaml:"expr"`
}

type yamlConfig struct {
	Behavior   string         `yaml:"behavior"`
	Content    []yamlElement  `yaml:"content"`
	Group      *yamlElement   `yaml:"group"`
	Properties map[string]any `yaml:"properties"`
	Test       yamlTest       `yaml:"test"`
}

// ParseConfig reads the YAML form of a Config. The result still passes
// through New, where behavior and filter validation happen.
func ParseConfig(data []byte) (Config, error) {
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("cannot parse transform configuration: %w", err)
	}
	cfg := Config{
		Behavior: Behavior(yc.Behavior),
		TestExpr: yc.Test.Expr,
	}
	if len(yc.Content) > 0 {
		nodes := make([]dom.Node, 0, len(yc.Content))
		for _, ye := range yc.Content {
			nodes = append(nodes, ye.element())
		}
		cfg.Content = Content(nodes...)
	}
	if yc.Group != nil {
		cfg.Group = Content(yc.Group.element())
	}
	if len(yc.Properties) > 0 {
		cfg.Properties = Props(dom.Properties(yc.Properties))
	}
	if len(yc.Test.Tags) > 0 {
		cfg.Test = yc.Test.Tags
	}
	return cfg, nil
}

func (ye yamlElement) element() *dom.Element {
	el := dom.NewElement(ye.Tag, dom.Properties(ye.Properties))
	if ye.Text != "" {
		el.AppendChild(dom.NewText(ye.Text))
	}
	for _, child := range ye.Children {
		el.AppendChild(child.element())
	}
	return el
}
