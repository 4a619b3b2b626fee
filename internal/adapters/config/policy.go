package config

import (
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	upgradePolicies = map[string]domain.UpgradePolicy{
		"as-needed": domain.UpgradeAsNeeded,
		"always":    domain.UpgradeAlways,
		"never":     domain.UpgradeNever,
	}
	suggestionPolicies = map[string]domain.Interest{
		"take":    domain.InterestTake,
		"untaken": domain.InterestUntaken,
		"ignore":  domain.InterestIgnore,
	}
	dependentsPolicies = map[string]domain.DependentsPolicy{
		"rebuild": domain.DependentsRebuild,
		"remove":  domain.DependentsRemove,
		"break":   domain.DependentsBreak,
	}
	confirmations = map[string]domain.RequiredConfirmation{
		string(domain.ConfirmNotBest):             domain.ConfirmNotBest,
		string(domain.ConfirmDowngrade):           domain.ConfirmDowngrade,
		string(domain.ConfirmMasked):              domain.ConfirmMasked,
		string(domain.ConfirmChangedChoices):      domain.ConfirmChangedChoices,
		string(domain.ConfirmBreak):               domain.ConfirmBreak,
		string(domain.ConfirmRemoveSystemPackage): domain.ConfirmRemoveSystemPackage,
	}
)

func parsePolicy(dto PolicyDTO) (domain.PolicyConfig, error) {
	cfg := domain.DefaultPolicyConfig()
	var err error

	if cfg.Upgrade, err = lookup(upgradePolicies, dto.Upgrade, "upgrade", cfg.Upgrade); err != nil {
		return cfg, err
	}
	if cfg.Suggestions, err = lookup(suggestionPolicies, dto.Suggestions, "suggestions", cfg.Suggestions); err != nil {
		return cfg, err
	}
	if cfg.Dependents, err = lookup(dependentsPolicies, dto.Dependents, "dependents", cfg.Dependents); err != nil {
		return cfg, err
	}
	if cfg.Targets, err = useExisting(dto.Targets, "targets"); err != nil {
		return cfg, err
	}
	if cfg.Dependencies, err = useExisting(dto.Dependencies, "dependencies"); err != nil {
		return cfg, err
	}

	cfg.InstalledBuildDeps = dto.InstalledBuildDeps
	cfg.Purge = dto.Purge
	if dto.ChoiceChanges != nil {
		cfg.ChoiceChanges = *dto.ChoiceChanges
	}
	if dto.MaxRestarts != nil {
		cfg.MaxRestarts = *dto.MaxRestarts
	}

	if cfg.ViaBinary, err = parseSpecs(dto.ViaBinary, "via_binary"); err != nil {
		return cfg, err
	}
	if cfg.Prefer, err = parseSpecs(dto.Prefer, "prefer"); err != nil {
		return cfg, err
	}
	if cfg.Avoid, err = parseSpecs(dto.Avoid, "avoid"); err != nil {
		return cfg, err
	}
	if cfg.Presets, err = parseSpecs(dto.Presets, "presets"); err != nil {
		return cfg, err
	}

	for _, name := range dto.Permit {
		c, ok := confirmations[name]
		if !ok {
			return cfg, unknownValue("permit", name)
		}
		cfg.Permit = append(cfg.Permit, c)
	}

	return cfg, nil
}

func lookup[T any](table map[string]T, value, field string, fallback T) (T, error) {
	if value == "" {
		return fallback, nil
	}
	v, ok := table[value]
	if !ok {
		return fallback, unknownValue(field, value)
	}
	return v, nil
}

func useExisting(value, field string) (*domain.UseExisting, error) {
	if value == "" {
		return nil, nil
	}
	u, err := domain.ParseUseExisting(value)
	if err != nil {
		return nil, zerr.With(err, "field", field)
	}
	return &u, nil
}

func unknownValue(field, value string) error {
	err := zerr.Wrap(domain.ErrUnknownPolicyValue, "cannot parse policy."+field)
	return zerr.With(zerr.With(err, "field", field), "value", value)
}
