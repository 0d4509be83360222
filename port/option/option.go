// Package option is the functional option toolkit used to configure optional parameters.
package option

type Option[Config any] interface {
	// Configure will configure an option.
	Configure(*Config)
}

// Func (option.Func[Config]) is a default implementation for creating options.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// Use will create a Config value and apply all the options on it.
// If the Config has an Init method, it is called before the options are applied,
// which allows setting defaults that differ from the zero value.
func Use[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if init, ok := any(&c).(initer); ok {
		init.Init()
	}
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

type initer interface {
	Init()
}
