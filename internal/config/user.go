package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// UserDefaults are process-wide defaults read from
// ~/.config/wt/config.toml. They seed repository configs that have not
// set the corresponding key; the repository file always wins.
type UserDefaults struct {
	BranchPrefix         string `toml:"branch_prefix"`
	BaseBranch           string `toml:"base_branch"`
	Remote               string `toml:"remote"`
	WorktreesDir         string `toml:"worktrees_dir"`
	DefaultCompanionTool string `toml:"default_companion_tool"`
	InitCommand          string `toml:"init_command"`
}

// UserConfigPath returns the path to the user-level defaults file.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wt", "config.toml"), nil
}

// LoadUserDefaults reads the user-level defaults file.
// A missing file yields zero defaults; a malformed file is an error.
func LoadUserDefaults() (UserDefaults, error) {
	path, err := UserConfigPath()
	if err != nil {
		return UserDefaults{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return UserDefaults{}, nil
		}
		return UserDefaults{}, fmt.Errorf("read user config: %w", err)
	}

	var u UserDefaults
	if err := toml.Unmarshal(data, &u); err != nil {
		return UserDefaults{}, fmt.Errorf("parse user config %s: %w", path, err)
	}
	return u, nil
}

// Apply overlays non-empty user defaults onto a base config.
func (u UserDefaults) Apply(base Config) Config {
	if u.BranchPrefix != "" {
		base.BranchPrefix = u.BranchPrefix
	}
	if u.BaseBranch != "" {
		base.BaseBranch = u.BaseBranch
	}
	if u.Remote != "" {
		base.Remote = u.Remote
	}
	if u.WorktreesDir != "" {
		base.WorktreesDir = expandHome(u.WorktreesDir)
	}
	if u.DefaultCompanionTool != "" {
		base.DefaultCompanionTool = u.DefaultCompanionTool
	}
	if u.InitCommand != "" {
		base.InitCommand = u.InitCommand
	}
	return base
}

// expandHome expands a leading ~ since shells don't expand inside
// config files.
func expandHome(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
