package config

type ModelInfo struct {
	Name        string
	Description string
}

// Models lists Ollama models that work well for short creative generation.
// The settings view cycles through these; any pulled model name is accepted.
var Models = []ModelInfo{
	{
		Name:        "llama3.2",
		Description: "Fast, good default",
	},
	{
		Name:        "llama3.1:8b",
		Description: "Stronger wordplay",
	},
	{
		Name:        "mistral:7b",
		Description: "Concise, dry delivery",
	},
	{
		Name:        "qwen2.5:7b",
		Description: "Good multilingual output",
	},
}

func GetModel(name string) *ModelInfo {
	for _, m := range Models {
		if m.Name == name {
			return &m
		}
	}
	return nil
}
