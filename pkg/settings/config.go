package settings

type Config struct {
	Queue  Queue  `mapstructure:"queue" yaml:"queue"`
	Logger Logger `mapstructure:"logger" yaml:"logger"`
}

// Queue is the configuration for a queue.
// A capacity of 0 means unbounded.
type Queue struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity" validate:"min=0"`
}

// Bounded reports whether the configuration declares a capacity limit.
func (q Queue) Bounded() bool {
	return q.Capacity != 0
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"min=0"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"min=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}
