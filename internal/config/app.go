package config

type AppConfig struct {
	BaseCurrencyName string   `yaml:"base-currency"`
	SymbolList       []string `yaml:"symbols"`
	TimeoutSeconds   int64    `yaml:"request-timeout-seconds"`
}

func (s *AppConfig) BaseCurrency() string {
	return s.BaseCurrencyName
}

// Symbols is the default currency filter applied when a command gets no
// -currencies flag. Empty means no filter.
func (s *AppConfig) Symbols() []string {
	return s.SymbolList
}

func (s *AppConfig) RequestTimeoutSeconds() int64 {
	return s.TimeoutSeconds
}
