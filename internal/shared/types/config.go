package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	UpstreamURL   string   `json:"upstream_url" yaml:"upstream_url" toml:"upstream_url"`
	UpstreamToken string   `json:"upstream_token" yaml:"upstream_token" toml:"upstream_token"`
	ListenAddr    string   `json:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`
	Currency      string   `json:"currency" yaml:"currency" toml:"currency"`
	Period        string   `json:"period" yaml:"period" toml:"period"`
	Plazas        []string `json:"plazas" yaml:"plazas" toml:"plazas"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
	LogLevel      string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat     string   `json:"log_format" yaml:"log_format" toml:"log_format"`
}
