package jokes

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// Template holds everything the prompt builder needs for one language:
// the comedian persona, per-tone guidance and examples, and the instruction
// block the context and count get interpolated into.
//
// Instructions is a fmt format string with indexed verbs:
// %[1]s tone name, %[2]s tone guidance, %[3]s example lines,
// %[4]d joke count, %[5]s user context.
type Template struct {
	System       string                `yaml:"system"`
	Instructions string                `yaml:"instructions"`
	Tones        map[Tone]ToneTemplate `yaml:"tones"`
}

type ToneTemplate struct {
	Guidance string   `yaml:"guidance"`
	Examples []string `yaml:"examples"`
}

var templates = map[Language]*Template{}

// Register adds or replaces the template for a language. Adding a language
// is a Register call plus a Languages entry; nothing else branches on it.
func Register(lang Language, t *Template) {
	templates[lang] = t
}

func init() {
	mustLoad(English, "templates/en.yaml")
	mustLoad(Romanian, "templates/ro.yaml")
}

func mustLoad(lang Language, path string) {
	data, err := templateFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("jokes: missing embedded template %s: %v", path, err))
	}
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		panic(fmt.Sprintf("jokes: bad template %s: %v", path, err))
	}
	Register(lang, &t)
}
