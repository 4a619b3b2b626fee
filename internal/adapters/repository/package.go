package repository

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/decider/internal/adapters/depstring"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/zerr"
)

// Package describes one package version as written in a repository file.
// Dependency fields hold dependency strings.
type Package struct {
	ID          string
	Slot        string
	Keywords    []string
	Masked      bool
	MaskReasons []string
	Transient   bool
	Choices     map[string]bool
	Locked      []string
	Build       string
	Run         string
	Post        string
	Suggest     string
}

// Resolve parses p into a PackageID belonging to repository.
func (p Package) Resolve(repository string, installed bool) (*domain.PackageID, error) {
	name, version, err := depstring.ParsePackageID(p.ID)
	if err != nil {
		return nil, err
	}

	slot := p.Slot
	if slot == "" {
		slot = "0"
	}

	id := &domain.PackageID{
		Name:        name,
		Version:     version,
		Slot:        slot,
		Repository:  repository,
		Installed:   installed,
		Transient:   p.Transient,
		Masked:      p.Masked,
		MaskReasons: p.MaskReasons,
		Keywords:    p.Keywords,
		Choices:     p.Choices,
		Locked:      p.Locked,
		Digest:      p.digest(),
	}
	if id.Masked && len(id.MaskReasons) == 0 {
		id.MaskReasons = []string{defaultMaskReason(p.Keywords)}
	}

	fields := []struct {
		raw  string
		dest *domain.DepNode
	}{
		{p.Build, &id.BuildDependencies},
		{p.Run, &id.RunDependencies},
		{p.Post, &id.PostDependencies},
		{p.Suggest, &id.SuggestionDependencies},
	}
	for _, f := range fields {
		node, err := depstring.Parse(f.raw)
		if err != nil {
			return nil, zerr.With(err, "package", p.ID)
		}
		*f.dest = node
	}
	return id, nil
}

// digest hashes the dependency metadata, so two IDs with the same digest have the same dependencies.
func (p Package) digest() string {
	h := xxhash.New()
	for _, s := range []string{p.Build, p.Run, p.Post, p.Suggest} {
		_, _ = h.WriteString(strings.Join(strings.Fields(s), " "))
		_, _ = h.WriteString("\x00")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// NewRepository resolves every package of a repository. IDs must be unique within it.
func NewRepository(name string, installed bool, packages []Package) (*domain.Repository, error) {
	repo := &domain.Repository{Name: name, Installed: installed}
	seen := make(map[string]struct{}, len(packages))
	for _, p := range packages {
		if _, ok := seen[p.ID]; ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicatePackageID, "repository "+name), "id", p.ID)
		}
		seen[p.ID] = struct{}{}

		id, err := p.Resolve(name, installed)
		if err != nil {
			return nil, zerr.With(err, "repository", name)
		}
		repo.IDs = append(repo.IDs, id)
	}
	return repo, nil
}

// defaultMaskReason explains a mask the repository gave no reason for. Packages
// keyworded only for testing ("~arch") are reported as keyword masked.
func defaultMaskReason(keywords []string) string {
	if len(keywords) > 0 && !slices.ContainsFunc(keywords, func(k string) bool {
		return !strings.HasPrefix(k, "~")
	}) {
		return "keyword " + strings.Join(keywords, " ")
	}
	return "masked"
}
