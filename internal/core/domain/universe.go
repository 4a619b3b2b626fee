package domain

// Repository is a named collection of package IDs.
type Repository struct {
	Name      string
	Installed bool
	IDs       []*PackageID
}

// Universe is everything one resolution run knows: the repositories it reads,
// the world and system sets, and the policy it runs under.
type Universe struct {
	// Root is the directory containing the configuration file.
	Root string
	// Digest identifies the configuration and repository contents.
	Digest       string
	Repositories []*Repository
	World        []*PackageDepSpec
	System       []*PackageDepSpec
	Policy       PolicyConfig
}

// UpgradePolicy controls how eagerly installed packages are replaced.
type UpgradePolicy string

const (
	// UpgradeAsNeeded keeps installed dependencies whenever they satisfy their constraints.
	UpgradeAsNeeded UpgradePolicy = "as-needed"
	// UpgradeAlways replaces dependencies unless the installed version is the best one.
	UpgradeAlways UpgradePolicy = "always"
	// UpgradeNever keeps installed packages, targets included, whenever possible.
	UpgradeNever UpgradePolicy = "never"
)

// DependentsPolicy controls what happens to installed packages whose dependencies go away.
type DependentsPolicy string

const (
	// DependentsRebuild reinstalls the dependent.
	DependentsRebuild DependentsPolicy = "rebuild"
	// DependentsRemove uninstalls the dependent.
	DependentsRemove DependentsPolicy = "remove"
	// DependentsBreak leaves the dependent installed but broken.
	DependentsBreak DependentsPolicy = "break"
)

// PolicyConfig is the user-facing policy configuration.
type PolicyConfig struct {
	Upgrade UpgradePolicy
	// Targets overrides the use-existing policy derived from Upgrade for targets.
	Targets *UseExisting
	// Dependencies overrides the use-existing policy derived from Upgrade for dependencies.
	Dependencies       *UseExisting
	Suggestions        Interest
	InstalledBuildDeps bool
	ChoiceChanges      bool
	Purge              bool
	Dependents         DependentsPolicy
	ViaBinary          []*PackageDepSpec
	Prefer             []*PackageDepSpec
	Avoid              []*PackageDepSpec
	Permit             []RequiredConfirmation
	Presets            []*PackageDepSpec
	MaxRestarts        int
}

// DefaultMaxRestarts bounds the number of restarts of a single resolution.
const DefaultMaxRestarts = 20

// DefaultPolicyConfig returns the policy used when the configuration omits a section.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		Upgrade:       UpgradeAsNeeded,
		Suggestions:   InterestUntaken,
		ChoiceChanges: true,
		Dependents:    DependentsRebuild,
		MaxRestarts:   DefaultMaxRestarts,
	}
}
