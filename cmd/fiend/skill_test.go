// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates the embedded skill and installation into a temp HOME.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSkillFSReadEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	contentStr := string(content)
	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}
	for _, marker := range []string{
		"name: fiend",
		"description:",
		"## When to use fiend",
		"mcp__fiend__add_workout",
		"mcp__fiend__update_workout",
		"mcp__fiend__delete_workout",
		"mcp__fiend__list_workouts",
		"mcp__fiend__exercise_stats",
		"mcp__fiend__list_exercises",
		"mcp__fiend__get_profile",
		"mcp__fiend__set_profile",
	} {
		if !strings.Contains(contentStr, marker) {
			t.Errorf("Expected SKILL.md to contain %q", marker)
		}
	}
}

func TestInstallSkillWritesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	var out bytes.Buffer
	if err := installSkill(strings.NewReader(""), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(home, ".claude", "skills", "fiend", "SKILL.md")
	written, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	embedded, _ := skillFS.ReadFile("skill/SKILL.md")
	if !bytes.Equal(written, embedded) {
		t.Error("Installed skill does not match embedded content")
	}
	if !strings.Contains(out.String(), "Installed fiend skill") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestInstallSkillOverwritesExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	skillDir := filepath.Join(home, ".claude", "skills", "fiend")
	skillPath := filepath.Join(skillDir, "SKILL.md")
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(skillPath, []byte("stale content"), 0644); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	var out bytes.Buffer
	if err := installSkill(strings.NewReader("yes\n"), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	newData, _ := os.ReadFile(skillPath)
	if strings.Contains(string(newData), "stale content") {
		t.Error("Old content should have been replaced")
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Error("Expected overwrite notice")
	}
}

func TestInstallSkillDeclined(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	if err := installSkill(strings.NewReader("n\n"), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".claude")); !os.IsNotExist(err) {
		t.Error("Declined install should not create anything")
	}
	if !strings.Contains(out.String(), "Installation canceled.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}
