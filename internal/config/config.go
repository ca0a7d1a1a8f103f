// internal/config/config.go
package config

type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// ---- DASHBOARD ----

type DashboardConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Poll     PollConfig    `yaml:"poll"`
	History  HistoryConfig `yaml:"history"`
	Locale   string        `yaml:"locale"`
	Timezone string        `yaml:"timezone"` // "" => client local time
	LogLevel string        `yaml:"log_level"`
	HTTP     HTTPConfig    `yaml:"http"`

	// Register display surface (optional, opt-in)
	Modbus *ModbusConfig `yaml:"modbus"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	TimeoutMs  int `yaml:"timeout_ms"` // 0 => interval
}

// ---- HISTORY ----

type HistoryConfig struct {
	Window int `yaml:"window"`
}

// ---- HTTP SURFACE ----

type HTTPConfig struct {
	Listen string `yaml:"listen"` // "" disables the surface
}

// ---- MODBUS SURFACE ----

type ModbusConfig struct {
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	MaxSlots    int    `yaml:"max_slots"`
}
