package config

import "go.trai.ch/decider/internal/core/domain"

// FileName is the name of the configuration file the loader looks for.
const FileName = domain.ConfigFileName

// File is the structure of decider.yaml.
type File struct {
	Version      string    `yaml:"version"`
	Repositories []string  `yaml:"repositories"`
	World        []string  `yaml:"world"`
	System       []string  `yaml:"system"`
	Policy       PolicyDTO `yaml:"policy"`
}

// PolicyDTO is the policy section of decider.yaml. Empty fields keep their defaults.
type PolicyDTO struct {
	Upgrade            string   `yaml:"upgrade"`
	Targets            string   `yaml:"targets"`
	Dependencies       string   `yaml:"dependencies"`
	Suggestions        string   `yaml:"suggestions"`
	InstalledBuildDeps bool     `yaml:"installed_build_deps"`
	ChoiceChanges      *bool    `yaml:"choice_changes"`
	Purge              bool     `yaml:"purge"`
	Dependents         string   `yaml:"dependents"`
	ViaBinary          []string `yaml:"via_binary"`
	Prefer             []string `yaml:"prefer"`
	Avoid              []string `yaml:"avoid"`
	Permit             []string `yaml:"permit"`
	Presets            []string `yaml:"presets"`
	MaxRestarts        *int     `yaml:"max_restarts"`
}

// RepositoryFile is the structure of a repository file.
type RepositoryFile struct {
	Name      string       `yaml:"name"`
	Installed bool         `yaml:"installed"`
	Packages  []PackageDTO `yaml:"packages"`
}

// PackageDTO is one package version in a repository file.
type PackageDTO struct {
	ID          string          `yaml:"id"`
	Slot        string          `yaml:"slot"`
	Keywords    []string        `yaml:"keywords"`
	Masked      bool            `yaml:"masked"`
	MaskReasons []string        `yaml:"mask_reasons"`
	Transient   bool            `yaml:"transient"`
	Choices     map[string]bool `yaml:"choices"`
	Locked      []string        `yaml:"locked"`
	Build       string          `yaml:"build"`
	Run         string          `yaml:"run"`
	Post        string          `yaml:"post"`
	Suggest     string          `yaml:"suggest"`
}
