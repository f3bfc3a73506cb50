package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestSealCmd_FlagsRegistered(t *testing.T) {
	want := map[string]bool{
		"cipher": false,
		"copy":   false,
	}
	SealCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	})
	for name, seen := range want {
		if !seen {
			t.Errorf("Expected flag --%s to be registered on seal", name)
		}
	}

	persistent := map[string]bool{
		"verbose": false,
		"debug":   false,
	}
	SealCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if _, ok := persistent[f.Name]; ok {
			persistent[f.Name] = true
		}
	})
	for name, seen := range persistent {
		if !seen {
			t.Errorf("Expected persistent flag --%s to be registered on seal", name)
		}
	}
}

func TestResolveInputText_Argument(t *testing.T) {
	text, err := resolveInputText([]string{"Hello, World!"})
	if err != nil {
		t.Fatalf("resolveInputText failed: %v", err)
	}
	if text != "Hello, World!" {
		t.Errorf("Expected argument text, got: %q", text)
	}
}

func TestSealCmd_SealsArgumentText(t *testing.T) {
	withTempSettings(t)
	defer ResetGlobalState()

	SealCmd.SetArgs([]string{"Hello, World!"})
	output := captureOutput(t, func() {
		if err := SealCmd.Execute(); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})

	if !strings.Contains(output, "Text sealed") {
		t.Errorf("Expected success message, got: %q", output)
	}
}

func TestSealCmd_UnknownCipher(t *testing.T) {
	withTempSettings(t)
	defer ResetGlobalState()

	SealCmd.SetArgs([]string{"text", "--cipher", "rot13"})
	output := captureOutput(t, func() {
		if err := SealCmd.Execute(); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})

	if !strings.Contains(output, "Unknown cipher") {
		t.Errorf("Expected unknown cipher message, got: %q", output)
	}
}
