package config

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/tessera-ai/tessera/core"
)

func TestStoreExplicitWinsOverEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")

	cfg := &Config{Providers: map[core.ProviderID]core.ProviderConfig{
		core.ProviderGroq: core.NewProviderConfig("explicit-key"),
	}}
	s := NewStore(cfg)

	pc, err := s.Resolve(core.ProviderGroq)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if pc.APIKey.Expose() != "explicit-key" {
		t.Errorf("key = %q, want explicit-key", pc.APIKey.Expose())
	}
}

func TestStoreLazyEnvResolution(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(nil)

	// Not configured and not in the environment.
	if _, err := s.Resolve(core.ProviderCerebras); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Resolve without credential = %v, want ErrConfiguration", err)
	}

	// Resolution is lazy: setting the variable after store construction works.
	t.Setenv("CEREBRAS_API_KEY", "late-key")
	pc, err := s.Resolve(core.ProviderCerebras)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if pc.APIKey.Expose() != "late-key" {
		t.Errorf("key = %q", pc.APIKey.Expose())
	}

	// The result is cached; clearing the env afterwards changes nothing.
	t.Setenv("CEREBRAS_API_KEY", "")
	pc, err = s.Resolve(core.ProviderCerebras)
	if err != nil {
		t.Fatalf("Resolve after env cleared: %v", err)
	}
	if pc.APIKey.Expose() != "late-key" {
		t.Errorf("cached key = %q, want late-key", pc.APIKey.Expose())
	}

	if !s.Has(core.ProviderCerebras) {
		t.Error("Has = false after lazy resolution")
	}
	if s.Default() != core.ProviderCerebras {
		t.Errorf("Default = %q, want cerebras", s.Default())
	}
}

func TestStoreUnknownProvider(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.Resolve("openai"); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("Resolve(openai) = %v, want ErrConfiguration", err)
	}
}

func TestStoreMissingCredentialMessage(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(nil)
	_, err := s.Resolve(core.ProviderGroq)
	if err == nil {
		t.Fatal("Resolve succeeded without credential")
	}
	// The error names the variable to set.
	got := err.Error()
	if !strings.Contains(got, "groq") || !strings.Contains(got, "GROQ_API_KEY") {
		t.Errorf("error %q does not name the provider and variable", got)
	}
}

func TestStoreAddAtomic(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(nil)
	s.Add(core.ProviderGroq, core.NewProviderConfig("v0"))

	// Concurrent readers must always observe a complete config, old or new.
	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				pc, err := s.Resolve(core.ProviderGroq)
				if err != nil {
					t.Errorf("Resolve during Add: %v", err)
					return
				}
				key := pc.APIKey.Expose()
				if key != "v0" && key != "v1" {
					t.Errorf("observed partial config: key=%q", key)
					return
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		s.Add(core.ProviderGroq, core.NewProviderConfig("v1"))
		s.Add(core.ProviderGroq, core.NewProviderConfig("v0"))
	}
	close(stop)
	wg.Wait()
}

func TestStoreProvidersOrder(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(nil)
	s.Add(core.ProviderHyperbolic, core.NewProviderConfig("a"))
	s.Add(core.ProviderGroq, core.NewProviderConfig("b"))
	s.Add(core.ProviderHyperbolic, core.NewProviderConfig("c")) // replace, keeps position

	got := s.Providers()
	want := []core.ProviderID{core.ProviderHyperbolic, core.ProviderGroq}
	if len(got) != len(want) {
		t.Fatalf("Providers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Providers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if s.Default() != core.ProviderHyperbolic {
		t.Errorf("Default = %q, want first added", s.Default())
	}
}

func TestNewStoreStableOrder(t *testing.T) {
	cfg := &Config{Providers: map[core.ProviderID]core.ProviderConfig{
		core.ProviderHyperbolic: core.NewProviderConfig("h"),
		core.ProviderGroq:       core.NewProviderConfig("g"),
	}}
	s := NewStore(cfg)

	got := s.Providers()
	want := []core.ProviderID{core.ProviderGroq, core.ProviderHyperbolic}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Providers() = %v, want %v", got, want)
	}
}
