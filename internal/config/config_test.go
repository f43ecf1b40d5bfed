package config

import (
	"os"
	"path/filepath"
	"testing"
)

func testProject(t *testing.T) Project {
	t.Helper()
	base := t.TempDir()
	return Project{
		ConfigFilePath: filepath.Join(base, "config", "config.json"),
		DataDir:        filepath.Join(base, "share"),
		StateFilePath:  filepath.Join(base, "state", "image_index.json"),
	}
}

func writeConfigFile(t *testing.T, project Project, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(project.ConfigFilePath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(project.ConfigFilePath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithProject(Options{}, testProject(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Number != 8 || cfg.Size != "UHD" || cfg.Ext != "jpg" {
		t.Errorf("Unexpected defaults: number=%d size=%s ext=%s", cfg.Number, cfg.Size, cfg.Ext)
	}
	want := "https://www.bing.com/HPImageArchive.aspx?format=js&n=8"
	if got := cfg.MetadataURL(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	project := testProject(t)
	writeConfigFile(t, project, `{"market": "en-CA"}`)

	cfg, err := LoadWithProject(Options{}, project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := "https://www.bing.com/HPImageArchive.aspx?format=js&mkt=en-CA&n=8"
	if got := cfg.MetadataURL(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	project := testProject(t)
	writeConfigFile(t, project, `{"market": "en-CA", "number": 4}`)

	one := 1
	cfg, err := LoadWithProject(Options{Number: &one, Index: &one}, project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := "https://www.bing.com/HPImageArchive.aspx?format=js&idx=1&mkt=en-CA&n=1"
	if got := cfg.MetadataURL(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestEnvBetweenFileAndFlags(t *testing.T) {
	project := testProject(t)
	writeConfigFile(t, project, `{"size": "1920x1080", "ext": "jpg"}`)
	t.Setenv("BINGWALL_SIZE", "UHD")
	t.Setenv("BINGWALL_EXT", "webp")

	jpg := "jpg"
	cfg, err := LoadWithProject(Options{Ext: &jpg}, project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Size != "UHD" {
		t.Errorf("Expected env to override the file, got size %s", cfg.Size)
	}
	if cfg.Ext != "jpg" {
		t.Errorf("Expected the flag to override env, got ext %s", cfg.Ext)
	}
}

func TestExplicitConfigPathMustExist(t *testing.T) {
	project := testProject(t)

	_, err := LoadWithProject(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.json")}, project)
	if err == nil {
		t.Error("Expected an error for a missing explicit config file")
	}
}

func TestInvalidConfigFile(t *testing.T) {
	project := testProject(t)
	writeConfigFile(t, project, `{not json`)

	if _, err := LoadWithProject(Options{}, project); err == nil {
		t.Error("Expected an error for an unparseable config file")
	}
}

func TestNumberMustBePositive(t *testing.T) {
	project := testProject(t)
	zero := 0

	if _, err := LoadWithProject(Options{Number: &zero}, project); err == nil {
		t.Error("Expected an error for a zero image count")
	}
}

func TestDataDirAndStateFileOverrides(t *testing.T) {
	project := testProject(t)
	dataDir := t.TempDir()
	stateFile := filepath.Join(t.TempDir(), "custom.json")

	cfg, err := LoadWithProject(Options{DataDir: dataDir, StateFile: stateFile}, project)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Project.DataDir != dataDir {
		t.Errorf("Expected data dir %s, got %s", dataDir, cfg.Project.DataDir)
	}
	if cfg.Project.StateFilePath != stateFile {
		t.Errorf("Expected state file %s, got %s", stateFile, cfg.Project.StateFilePath)
	}
}

func TestEnsureDirs(t *testing.T) {
	project := testProject(t)
	if err := project.EnsureDirs(); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}

	if _, err := os.Stat(project.DataDir); err != nil {
		t.Errorf("Expected data dir to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(project.StateFilePath)); err != nil {
		t.Errorf("Expected state dir to exist: %v", err)
	}
}
