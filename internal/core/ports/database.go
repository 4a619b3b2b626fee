package ports

import "go.trai.ch/decider/internal/core/domain"

// PackageDatabase is the read-only query interface over installed and installable packages.
// Implementations must be free of side effects; the resolver calls them freely and repeatedly.
//
//go:generate go run go.uber.org/mock/mockgen -source=database.go -destination=mocks/mock_database.go -package=mocks
type PackageDatabase interface {
	// Versions returns every ID named name that passes filter, sorted by ascending version.
	Versions(name domain.InternedString, filter domain.Filter) []*domain.PackageID

	// BestPerSlot returns the highest version in each slot of name that passes filter,
	// ordered by slot name.
	BestPerSlot(name domain.InternedString, filter domain.Filter) []*domain.PackageID

	// AllInstalled returns every installed ID, ordered by name then version.
	AllInstalled() []*domain.PackageID

	// InstalledRepository returns the name of the repository packages are installed into.
	InstalledRepository() string

	// World returns the specs the user explicitly asked to keep installed.
	World() []*domain.PackageDepSpec

	// System returns the specs of packages that make up the base system.
	System() []*domain.PackageDepSpec
}
