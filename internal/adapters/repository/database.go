// Package repository provides an in-memory package database over installed and
// installable repositories.
package repository

import (
	"cmp"
	"slices"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/semver"
)

// DefaultInstalledRepository names the installed repository when the universe has none.
const DefaultInstalledRepository = "installed"

// Database is a read-only ports.PackageDatabase.
type Database struct {
	byName        map[domain.InternedString][]*domain.PackageID
	installed     []*domain.PackageID
	installedRepo string
	world         []*domain.PackageDepSpec
	system        []*domain.PackageDepSpec
}

// New indexes the repositories of u.
func New(u *domain.Universe) *Database {
	db := &Database{
		byName:        make(map[domain.InternedString][]*domain.PackageID),
		installedRepo: DefaultInstalledRepository,
		world:         u.World,
		system:        u.System,
	}

	foundInstalled := false
	for _, repo := range u.Repositories {
		if repo.Installed && !foundInstalled {
			db.installedRepo = repo.Name
			foundInstalled = true
		}
		for _, id := range repo.IDs {
			db.byName[id.Name] = append(db.byName[id.Name], id)
			if id.Installed {
				db.installed = append(db.installed, id)
			}
		}
	}

	for _, ids := range db.byName {
		slices.SortStableFunc(ids, compareIDs)
	}
	slices.SortStableFunc(db.installed, func(a, b *domain.PackageID) int {
		return cmp.Or(cmp.Compare(a.Name.String(), b.Name.String()), compareIDs(a, b))
	})
	return db
}

// compareIDs orders by version, then slot, then repository.
func compareIDs(a, b *domain.PackageID) int {
	return cmp.Or(
		semver.CompareWithRevision(a.Version, b.Version),
		cmp.Compare(a.Slot, b.Slot),
		cmp.Compare(a.Repository, b.Repository),
	)
}

func keep(id *domain.PackageID, filter domain.Filter) bool {
	switch filter {
	case domain.FilterInstalled:
		return id.Installed
	case domain.FilterInstallable:
		return !id.Installed
	case domain.FilterInstallableUnmasked:
		return !id.Installed && !id.Masked
	default:
		return false
	}
}

// Versions returns the IDs named name passing filter, lowest version first.
func (db *Database) Versions(name domain.InternedString, filter domain.Filter) []*domain.PackageID {
	var out []*domain.PackageID
	for _, id := range db.byName[name] {
		if keep(id, filter) {
			out = append(out, id)
		}
	}
	return out
}

// BestPerSlot returns the highest version passing filter in every slot, ordered by slot.
func (db *Database) BestPerSlot(name domain.InternedString, filter domain.Filter) []*domain.PackageID {
	best := make(map[string]*domain.PackageID)
	for _, id := range db.Versions(name, filter) {
		best[id.Slot] = id
	}
	out := make([]*domain.PackageID, 0, len(best))
	for _, id := range best {
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b *domain.PackageID) int {
		return cmp.Compare(a.Slot, b.Slot)
	})
	return out
}

// AllInstalled returns every installed ID ordered by name and version.
func (db *Database) AllInstalled() []*domain.PackageID {
	return slices.Clone(db.installed)
}

// InstalledRepository names the repository installs go to.
func (db *Database) InstalledRepository() string {
	return db.installedRepo
}

// World returns the world set.
func (db *Database) World() []*domain.PackageDepSpec {
	return db.world
}

// System returns the system set.
func (db *Database) System() []*domain.PackageDepSpec {
	return db.system
}
