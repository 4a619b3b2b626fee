// Package config loads decider.yaml and the repository files it references.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/decider/internal/adapters/depstring"
	"go.trai.ch/decider/internal/adapters/repository"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds decider.yaml in cwd or one of its parents and builds the universe it describes.
func (l *Loader) Load(cwd string) (*domain.Universe, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	raw, err := readFile(configPath)
	if err != nil {
		return nil, err
	}

	var file File
	if err := unmarshal(configPath, raw, &file); err != nil {
		return nil, err
	}

	root := filepath.Dir(configPath)
	paths, err := expandRepositories(root, file.Repositories)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s references no repository files", FileName))
	}

	loaded, err := loadRepositories(paths)
	if err != nil {
		return nil, err
	}

	u := &domain.Universe{Root: root}

	hasher := xxhash.New()
	_, _ = hasher.Write(raw)
	for _, repo := range loaded {
		_, _ = hasher.Write(repo.raw)
		u.Repositories = append(u.Repositories, repo.repository)
	}
	u.Digest = strconv.FormatUint(hasher.Sum64(), 16)

	if u.World, err = parseSpecs(file.World, "world"); err != nil {
		return nil, err
	}
	if u.System, err = parseSpecs(file.System, "system"); err != nil {
		return nil, err
	}
	if u.Policy, err = parsePolicy(file.Policy); err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	return u, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no "+FileName+" found"), "cwd", cwd)
		}
		currentDir = parentDir
	}
}

// expandRepositories resolves globs relative to root. Matches are deduplicated and
// sorted so the universe digest does not depend on pattern order.
func expandRepositories(root string, patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "pattern", pattern)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

type loadedRepository struct {
	raw        []byte
	repository *domain.Repository
}

func loadRepositories(paths []string) ([]loadedRepository, error) {
	loaded := make([]loadedRepository, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			repo, err := loadRepository(path)
			if err != nil {
				return err
			}
			loaded[i] = repo
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(loaded))
	for i, repo := range loaded {
		if other, ok := seen[repo.repository.Name]; ok {
			err := zerr.Wrap(domain.ErrConfigParseFailed, "repository "+repo.repository.Name+" is declared twice")
			return nil, zerr.With(zerr.With(err, "file", paths[i]), "other", other)
		}
		seen[repo.repository.Name] = paths[i]
	}
	return loaded, nil
}

func loadRepository(path string) (loadedRepository, error) {
	raw, err := readFile(path)
	if err != nil {
		return loadedRepository{}, err
	}

	var file RepositoryFile
	if err := unmarshal(path, raw, &file); err != nil {
		return loadedRepository{}, err
	}
	if file.Name == "" {
		err := zerr.Wrap(domain.ErrConfigParseFailed, "repository file has no name")
		return loadedRepository{}, zerr.With(err, "file", path)
	}

	packages := make([]repository.Package, 0, len(file.Packages))
	for i := range file.Packages {
		packages = append(packages, toPackage(&file.Packages[i]))
	}

	repo, err := repository.NewRepository(file.Name, file.Installed, packages)
	if err != nil {
		return loadedRepository{}, zerr.With(err, "file", path)
	}
	return loadedRepository{raw: raw, repository: repo}, nil
}

func toPackage(dto *PackageDTO) repository.Package {
	return repository.Package{
		ID:          dto.ID,
		Slot:        dto.Slot,
		Keywords:    dto.Keywords,
		Masked:      dto.Masked,
		MaskReasons: dto.MaskReasons,
		Transient:   dto.Transient,
		Choices:     dto.Choices,
		Locked:      dto.Locked,
		Build:       dto.Build,
		Run:         dto.Run,
		Post:        dto.Post,
		Suggest:     dto.Suggest,
	}
}

func parseSpecs(values []string, field string) ([]*domain.PackageDepSpec, error) {
	var specs []*domain.PackageDepSpec
	for _, v := range values {
		spec, err := depstring.ParsePackageDepSpec(v)
		if err != nil {
			return nil, zerr.With(err, "field", field)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func readFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from the configuration search or its globs
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "file", path)
	}
	return raw, nil
}

func unmarshal[T any](path string, raw []byte, target *T) error {
	if err := yaml.Unmarshal(raw, target); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "file", path)
	}
	return nil
}
