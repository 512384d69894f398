package config_test

import (
	"fmt"

	"github.com/walteh/llmigrate/pkg/config"
)

func ExampleParse() {
	cfg, err := config.Parse([]byte(`
prompt: Migrate this code from Jest to Vitest. Reply with code only.
contentMatchCriteria:
  - jest.fn
  - jest.mock
`))
	if err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		return
	}

	fmt.Printf("glob: %s\n", cfg.Glob)
	fmt.Printf("matches jest.fn: %t\n", cfg.Matches("const f = jest.fn()"))
	fmt.Printf("matches vi.fn: %t\n", cfg.Matches("const f = vi.fn()"))

	// Output:
	// glob: **/*
	// matches jest.fn: true
	// matches vi.fn: false
}
