package config

// CommonFlags holds flags shared by every command
type CommonFlags struct {
	Verbose bool
	LogJSON bool
}

// OutputConfig holds flags that shape the scripts report
type OutputConfig struct {
	JSON   bool
	Strict bool
}
