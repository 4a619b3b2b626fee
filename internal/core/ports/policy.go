package ports

import "go.trai.ch/decider/internal/core/domain"

// Policy bundles every decision the resolver delegates to its caller.
//
//go:generate go run go.uber.org/mock/mockgen -source=policy.go -destination=mocks/mock_policy.go -package=mocks
type Policy interface {
	// InitialConstraintsFor returns constraints every new resolution for r starts with.
	InitialConstraintsFor(r domain.Resolvent) domain.Constraints

	// UseExistingFor returns the use-existing policy, and whether doing nothing is acceptable,
	// for a spec raised for reason.
	UseExistingFor(spec domain.PackageOrBlockDepSpec, reason domain.Reason) (domain.UseExisting, bool)

	// Interest classifies a dependency of id. existing is true when id is kept as installed.
	Interest(id *domain.PackageID, dep domain.SanitisedDependency, existing bool) domain.Interest

	// DestinationTypesFor returns the destinations a spec raised for reason applies to.
	DestinationTypesFor(spec domain.PackageOrBlockDepSpec, reason domain.Reason) []domain.DestinationType

	// MakeDestination picks the repository id would be installed into for r and the
	// installed IDs it would replace there.
	MakeDestination(r domain.Resolvent, id *domain.PackageID) (*domain.Destination, error)

	// AllowChoiceChanges reports whether choices may be toggled to satisfy constraints on r.
	AllowChoiceChanges(r domain.Resolvent) bool

	// AlwaysViaBinary reports whether a binary should also be created for res.
	AlwaysViaBinary(res *domain.Resolution) bool

	// ConstraintsForDependent returns the constraints to apply to the resolution of an
	// installed id whose dependencies dependsOn are going away.
	ConstraintsForDependent(res *domain.Resolution, id *domain.PackageID, dependsOn []*domain.PackageID) domain.Constraints

	// ConstraintsForPurge returns the constraints to apply to an installed id nothing uses any more.
	ConstraintsForPurge(res *domain.Resolution, id *domain.PackageID, usedBy []*domain.PackageID) domain.Constraints

	// AllowedToRemove reports whether the installed id may be removed from r.
	AllowedToRemove(r domain.Resolvent, id *domain.PackageID) bool

	// Prefer returns an explicit verdict for spec, used to rank any-of branches.
	Prefer(spec *domain.PackageDepSpec) domain.Preference

	// Confirm reports whether c is already approved for res.
	Confirm(res *domain.Resolution, c domain.RequiredConfirmation) bool
}
