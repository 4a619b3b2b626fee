package domain

// DependencyClass says when a dependency is needed.
type DependencyClass int

const (
	// DependencyBuild is needed to build the package.
	DependencyBuild DependencyClass = iota
	// DependencyRun is needed to use the package.
	DependencyRun
	// DependencyPost may be satisfied after the package is installed.
	DependencyPost
	// DependencySuggestion is optional.
	DependencySuggestion
)

// DependencyClasses lists the classes in the order their trees are walked.
var DependencyClasses = []DependencyClass{
	DependencyBuild,
	DependencyRun,
	DependencyPost,
	DependencySuggestion,
}

func (c DependencyClass) String() string {
	switch c {
	case DependencyBuild:
		return "build"
	case DependencyRun:
		return "run"
	case DependencyPost:
		return "post"
	case DependencySuggestion:
		return "suggestion"
	default:
		return "unknown"
	}
}

// SanitisedDependency is a single package or block requirement pulled out of
// a dependency tree after conditionals and any-of groups have been resolved.
type SanitisedDependency struct {
	Spec  PackageOrBlockDepSpec
	Class DependencyClass
	// Conditions lists the conditionals ("flag?", "!flag?") the spec was nested in.
	Conditions []string
}

func (d SanitisedDependency) String() string {
	return d.Class.String() + " " + d.Spec.String()
}

// Interest is how much we care about a dependency.
type Interest int

const (
	// InterestIgnore drops the dependency.
	InterestIgnore Interest = iota
	// InterestTake turns the dependency into a required constraint.
	InterestTake
	// InterestUntaken turns the dependency into a suggestion.
	InterestUntaken
)

func (i Interest) String() string {
	switch i {
	case InterestTake:
		return "take"
	case InterestUntaken:
		return "untaken"
	default:
		return "ignore"
	}
}

// Preference is an explicit verdict on a spec.
type Preference int

const (
	// PreferenceNone expresses no opinion.
	PreferenceNone Preference = iota
	// PreferencePrefer ranks the spec above anything else.
	PreferencePrefer
	// PreferenceAvoid ranks the spec below everything that is installable.
	PreferenceAvoid
)

// Filter restricts which versions a database query returns.
type Filter int

const (
	// FilterInstalled returns installed packages.
	FilterInstalled Filter = iota
	// FilterInstallable returns packages available from repositories, masked ones included.
	FilterInstallable
	// FilterInstallableUnmasked returns installable packages that are not masked.
	FilterInstallableUnmasked
)
