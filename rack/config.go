package rack

// ParamConfig describes one module parameter.
type ParamConfig struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Unit    string
	Button  bool
}

// PortConfig describes a jack or a light.
type PortConfig struct {
	Label string
}

// Config is the static description of a module: its slug and the ports it
// declares, in id order.
type Config struct {
	Slug    string
	Params  []ParamConfig
	Inputs  []PortConfig
	Outputs []PortConfig
	Lights  []PortConfig
}

// ParamIndex returns the id of the parameter with the given key, or -1.
func (c Config) ParamIndex(key string) int {
	for i, p := range c.Params {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func button(key, label string) ParamConfig {
	return ParamConfig{Key: key, Label: label, Min: 0, Max: 1, Button: true}
}

func ports(labels ...string) []PortConfig {
	out := make([]PortConfig, len(labels))
	for i, l := range labels {
		out[i] = PortConfig{Label: l}
	}
	return out
}
