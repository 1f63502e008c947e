package config

type CurrencyapiConfig struct {
	Key     string `yaml:"api-key"`
	BaseUrl string `yaml:"base-url"`
}

func (c *CurrencyapiConfig) ApiKey() string {
	return c.Key
}

// BaseURL is empty unless the config points the client somewhere else than
// the production API, e.g. a local stub.
func (c *CurrencyapiConfig) BaseURL() string {
	return c.BaseUrl
}
