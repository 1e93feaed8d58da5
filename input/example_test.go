package input_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/sXperfect/gunz-utils/input"
)

// Example demonstrates basic usage of the input package helpers.
func Example() {
	// Simulate JSON unmarshaled into map[string]any
	config := map[string]any{
		"host":     "example.com",
		"port":     8080,  // int from JSON
		"timeout":  "30s", // string duration
		"retries":  3.0,   // float64 from JSON
		"enabled":  true,
		"tags":     []string{"web", "api"},
		"settings": map[string]any{"debug": true},
	}

	host := input.String(config, "host", "localhost")
	port := input.Int(config, "port", 80)
	timeout := input.Duration(config, "timeout", 10*time.Second)
	retries := input.Int(config, "retries", 1)
	enabled := input.Bool(config, "enabled", false)
	tags := input.StringSlice(config, "tags")
	settings := input.Map(config, "settings")

	fmt.Printf("Host: %s\n", host)
	fmt.Printf("Port: %d\n", port)
	fmt.Printf("Timeout: %v\n", timeout)
	fmt.Printf("Retries: %d\n", retries)
	fmt.Printf("Enabled: %t\n", enabled)
	fmt.Printf("Tags: %v\n", tags)
	fmt.Printf("Settings: %v\n", settings)

	// Output:
	// Host: example.com
	// Port: 8080
	// Timeout: 30s
	// Retries: 3
	// Enabled: true
	// Tags: [web api]
	// Settings: map[debug:true]
}

// ExampleDuration demonstrates the accepted duration formats.
func ExampleDuration() {
	configs := []map[string]any{
		{"timeout": 30},               // int seconds
		{"timeout": "5m"},             // string duration
		{"timeout": 45 * time.Second}, // time.Duration
		{"timeout": "1h30m"},          // complex duration
		{"timeout": "not-a-duration"}, // invalid - uses default
		{},                            // missing - uses default
	}

	for _, config := range configs {
		timeout := input.Duration(config, "timeout", 10*time.Second)
		fmt.Printf("%v -> %v\n", config["timeout"], timeout)
	}

	// Output:
	// 30 -> 30s
	// 5m -> 5m0s
	// 45s -> 45s
	// 1h30m -> 1h30m0s
	// not-a-duration -> 10s
	// <nil> -> 10s
}

// ExampleRequireInt demonstrates strict extraction with sentinel errors.
func ExampleRequireInt() {
	config := map[string]any{"port": "8080", "debug": true}

	port, err := input.RequireInt(config, "port")
	fmt.Println(port, err)

	_, err = input.RequireInt(config, "debug")
	fmt.Println(errors.Is(err, input.ErrWrongType))

	_, err = input.RequireInt(config, "missing")
	fmt.Println(errors.Is(err, input.ErrMissingKey))

	// Output:
	// 8080 <nil>
	// true
	// true
}
