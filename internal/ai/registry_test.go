// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// mockProvider is a test double implementing the Provider interface.
// It records calls and returns configurable responses.
type mockProvider struct {
	name       string
	response   string
	err        error
	callCount  int
	lastSystem string
	lastUser   string
	mu         sync.Mutex
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.response, m.err
}

func TestRegistryGenerate(t *testing.T) {
	t.Run("delegates to active provider", func(t *testing.T) {
		mock := &mockProvider{name: "test", response: "Hello from mock"}

		reg := NewRegistry("test", nil)
		reg.Register("test", mock)

		result, err := reg.Generate(context.Background(), "system", "user")
		if err != nil {
			t.Fatalf("Generate: unexpected error: %v", err)
		}
		if result != "Hello from mock" {
			t.Errorf("result: got %q, want %q", result, "Hello from mock")
		}

		mock.mu.Lock()
		defer mock.mu.Unlock()
		if mock.callCount != 1 {
			t.Errorf("callCount: got %d, want 1", mock.callCount)
		}
		if mock.lastSystem != "system" {
			t.Errorf("systemPrompt: got %q, want %q", mock.lastSystem, "system")
		}
	})

	t.Run("propagates provider error", func(t *testing.T) {
		mock := &mockProvider{name: "test", err: fmt.Errorf("api failure")}

		reg := NewRegistry("test", nil)
		reg.Register("test", mock)

		_, err := reg.Generate(context.Background(), "system", "user")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("error when active provider is unknown", func(t *testing.T) {
		reg := NewRegistry("nope", nil)
		if _, err := reg.Generate(context.Background(), "s", "u"); err == nil {
			t.Fatal("expected error for unconfigured provider")
		}
	})
}

func TestRegistryLocalAlwaysAvailable(t *testing.T) {
	// No API keys at all — the local provider must still serve.
	reg := NewRegistry("local", map[string]ProviderConfig{
		"openai":  {APIKey: ""},
		"mistral": {APIKey: ""},
	})

	if !reg.HasProvider("local") {
		t.Fatal("local provider missing")
	}
	if reg.HasProvider("openai") {
		t.Error("openai registered without an API key")
	}

	p, err := reg.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if p.Name() != "local" {
		t.Errorf("active provider: got %q, want local", p.Name())
	}
}

func TestRegistrySetActive(t *testing.T) {
	reg := NewRegistry("local", map[string]ProviderConfig{
		"mistral": {APIKey: "test-key", Model: "mistral-small-latest"},
	})

	if err := reg.SetActive("mistral"); err != nil {
		t.Fatalf("SetActive(mistral): %v", err)
	}
	if reg.ActiveName() != "mistral" {
		t.Errorf("ActiveName: got %q, want mistral", reg.ActiveName())
	}

	if err := reg.SetActive("gemini"); err == nil {
		t.Error("SetActive accepted an unconfigured provider")
	}
	if reg.ActiveName() != "mistral" {
		t.Error("failed SetActive changed the active provider")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry("local", nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Register(fmt.Sprintf("p%d", i), &mockProvider{name: "x", response: "ok"})
			reg.ActiveName()
			reg.Available()
			reg.Generate(context.Background(), "s", `{"restaurant_name":"x"}`)
		}(i)
	}
	wg.Wait()

	if len(reg.Available()) < 17 { // 16 mocks + local
		t.Errorf("expected all registered providers, got %d", len(reg.Available()))
	}
}
