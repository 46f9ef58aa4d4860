package frontend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
)

const ManifestName = "flume.toml"

type FlumeToml struct {
	Name     string `toml:"name" validate:"required"`
	Version  string `toml:"version" validate:"required"`
	Lib      bool   `toml:"lib"`
	Compiler string `toml:"compiler"`
}

// HandleFlumeToml parses and validates a manifest. compilerVersion is
// checked against the manifest's compiler constraint when one is set.
func HandleFlumeToml(tomlContent, compilerVersion string) (FlumeToml, error) {
	var ft FlumeToml
	_, err := toml.Decode(tomlContent, &ft)
	if err != nil {
		return ft, err
	}
	validate := validator.New()
	if err := validate.Struct(ft); err != nil {
		return ft, err
	}
	if _, err := semver.NewVersion(ft.Version); err != nil {
		return ft, fmt.Errorf("invalid project version %q: %w", ft.Version, err)
	}
	if ft.Compiler != "" {
		c, err := semver.NewConstraint(ft.Compiler)
		if err != nil {
			return ft, fmt.Errorf("invalid compiler constraint %q: %w", ft.Compiler, err)
		}
		v, err := semver.NewVersion(compilerVersion)
		if err != nil {
			return ft, fmt.Errorf("invalid compiler version %q: %w", compilerVersion, err)
		}
		if !c.Check(v) {
			return ft, fmt.Errorf("project %q requires compiler %s, have %s", ft.Name, ft.Compiler, compilerVersion)
		}
	}
	return ft, nil
}

// LoadProject reads and validates the manifest of the project rooted at
// dir.
func LoadProject(dir, compilerVersion string) (FlumeToml, error) {
	content, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return FlumeToml{}, err
	}
	return HandleFlumeToml(string(content), compilerVersion)
}
