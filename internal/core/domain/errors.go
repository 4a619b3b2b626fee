package domain

import "go.trai.ch/zerr"

var (
	// ErrResolventAlreadyExists is returned when a resolvent is added to a graph twice.
	ErrResolventAlreadyExists = zerr.New("resolvent already exists")

	// ErrMissingResolvent is returned when an edge references a resolvent that is not in the graph.
	ErrMissingResolvent = zerr.New("missing resolvent")

	// ErrConfigNotFound is returned when no decider.yaml can be found.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when a configuration or repository file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when a configuration or repository file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrInvalidDepString is returned when a dependency string cannot be parsed.
	ErrInvalidDepString = zerr.New("invalid dependency string")

	// ErrInvalidPackageID is returned when a package id is not of the form category/name-version.
	ErrInvalidPackageID = zerr.New("invalid package id")

	// ErrDuplicatePackageID is returned when a repository declares the same id twice.
	ErrDuplicatePackageID = zerr.New("duplicate package id")

	// ErrUnknownUseExisting is returned when a use-existing policy name is not recognised.
	ErrUnknownUseExisting = zerr.New("unknown use-existing policy")

	// ErrUnknownPolicyValue is returned when a policy option has an unsupported value.
	ErrUnknownPolicyValue = zerr.New("unknown policy value")

	// ErrNoTargetsSpecified is returned when resolution is requested without targets.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrUnresolvable is returned when a resolution attempt ends with a required resolvent that cannot be made.
	ErrUnresolvable = zerr.New("targets cannot be resolved")

	// ErrTooManyRestarts is returned when resolution keeps asking to restart.
	ErrTooManyRestarts = zerr.New("too many restarts")

	// ErrNoDestination is returned when no repository can receive a package.
	ErrNoDestination = zerr.New("no suitable destination")

	// ErrStoreReadFailed is returned when the plan store cannot read a record.
	ErrStoreReadFailed = zerr.New("failed to read plan record")

	// ErrStoreUnmarshalFailed is returned when a stored plan record is corrupt.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal plan record")

	// ErrStoreMarshalFailed is returned when a plan record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal plan record")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreWriteFailed is returned when a plan record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write plan record")
)
