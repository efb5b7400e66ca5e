package bot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRepliesDefaults(t *testing.T) {
	r, err := LoadReplies("")
	if err != nil {
		t.Fatalf("LoadReplies returned error: %v", err)
	}
	if r.Welcome == "" || r.Help == "" || r.Added == "" {
		t.Fatalf("defaults incomplete: %+v", r)
	}
}

func TestLoadRepliesOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replies.yaml")
	content := "welcome: \"Hello from the test shop\"\naddress_prompt: \"Where to?\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write replies file: %v", err)
	}

	r, err := LoadReplies(path)
	if err != nil {
		t.Fatalf("LoadReplies returned error: %v", err)
	}
	if r.Welcome != "Hello from the test shop" {
		t.Fatalf("welcome override not applied: %q", r.Welcome)
	}
	if r.AddressPrompt != "Where to?" {
		t.Fatalf("address prompt override not applied: %q", r.AddressPrompt)
	}
	if r.Help != defaultReplies().Help {
		t.Fatal("unset fields must keep their defaults")
	}
}

func TestLoadRepliesMissingFile(t *testing.T) {
	if _, err := LoadReplies(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing overrides file")
	}
}
