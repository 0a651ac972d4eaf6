package bot

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNewBot(t *testing.T) {
	cfg := &Config{
		DiscordToken: "test-token",
	}

	b := NewBot(cfg)

	if b == nil {
		t.Fatal("expected bot to be created, got nil")
	}
	if b.config != cfg {
		t.Error("expected config to be stored")
	}
}

func TestBot_InitModules_InitializesModules(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token"}
	b := NewBot(cfg)

	initCalled := false
	trackingMod := &trackingStubModule{
		stubModule: stubModule{name: "tracking"},
		initCalled: &initCalled,
	}
	b.modules = []Module{trackingMod}

	err := b.initModules()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !initCalled {
		t.Error("expected Init to be called")
	}
}

func TestBot_InitModules_ReturnsInitError(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token"}
	b := NewBot(cfg)

	expectedErr := errors.New("init failed")
	mod := &stubModule{
		name:    "failing",
		initErr: expectedErr,
	}
	b.modules = []Module{mod}

	err := b.initModules()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestBot_CollectIntents(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token"}
	b := NewBot(cfg)

	mod1 := &stubModule{
		name:    "mod1",
		intents: discordgo.IntentsGuilds,
	}
	mod2 := &stubModule{
		name:    "mod2",
		intents: discordgo.IntentsGuildVoiceStates,
	}
	b.modules = []Module{mod1, mod2}

	intents := b.collectIntents()
	want := discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	if intents != want {
		t.Errorf("expected intents %d, got %d", want, intents)
	}
}

func TestBot_LoadModuleConfigs_ReturnsConfigError(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token"}
	b := NewBot(cfg)

	expectedErr := errors.New("missing setting")
	mod := &configurableStubModule{
		stubModule: stubModule{name: "configurable"},
		configErr:  expectedErr,
	}
	b.modules = []Module{mod}

	err := b.loadModuleConfigs()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestBot_Stop_ShutsDownModules(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token"}
	b := NewBot(cfg)

	shutCalled := false
	mod := &trackingStubModule{
		stubModule: stubModule{name: "tracking"},
		shutCalled: &shutCalled,
	}
	b.modules = []Module{mod}

	if err := b.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shutCalled {
		t.Error("expected Shutdown to be called")
	}
}

// trackingStubModule is a stub that tracks lifecycle calls
type trackingStubModule struct {
	stubModule
	initCalled *bool
	shutCalled *bool
}

func (m *trackingStubModule) Init(deps ModuleDependencies) error {
	if m.initCalled != nil {
		*m.initCalled = true
	}
	return m.stubModule.Init(deps)
}

func (m *trackingStubModule) Shutdown() error {
	if m.shutCalled != nil {
		*m.shutCalled = true
	}
	return m.stubModule.Shutdown()
}

// configurableStubModule is a stub that implements ConfigurableModule
type configurableStubModule struct {
	stubModule
	configErr error
}

func (m *configurableStubModule) LoadConfig() error { return m.configErr }
