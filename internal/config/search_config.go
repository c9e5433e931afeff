package config

import "fmt"

type SearchConfig struct {
	MaxPageSize     int `mapstructure:"max_page_size"`
	DefaultPageSize int `mapstructure:"default_page_size"`
	SuggestionLimit int `mapstructure:"suggestion_limit"`
}

func (config SearchConfig) validate() error {

	if config.MaxPageSize < 0 || config.DefaultPageSize < 0 || config.SuggestionLimit < 0 {
		return fmt.Errorf("search limits must be non-negative")
	}

	if config.MaxPageSize > 0 && config.DefaultPageSize > config.MaxPageSize {
		return fmt.Errorf("default page size exceeds max page size")
	}

	return nil
}

func (config SearchConfig) MaxPageSizeOrDefault() int {
	if config.MaxPageSize == 0 {
		return 100
	}
	return config.MaxPageSize
}

func (config SearchConfig) DefaultPageSizeOrDefault() int {
	if config.DefaultPageSize == 0 {
		return 20
	}
	return config.DefaultPageSize
}

func (config SearchConfig) SuggestionLimitOrDefault() int {
	if config.SuggestionLimit == 0 {
		return 10
	}
	return config.SuggestionLimit
}
