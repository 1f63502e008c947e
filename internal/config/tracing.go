package config

type TracingConfig struct {
	TracingEnabled bool   `yaml:"enabled"`
	Service        string `yaml:"service-name"`
	AgentHostPort  string `yaml:"agent-addr"`
}

func (t *TracingConfig) Enabled() bool {
	return t.TracingEnabled
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) AgentAddr() string {
	return t.AgentHostPort
}
