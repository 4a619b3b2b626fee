package decider

import (
	"slices"

	"go.trai.ch/decider/internal/core/domain"
)

// processConfirmations flags risky taken decisions. Confirmations the policy
// pre-approves are not recorded.
func (d *Decider) processConfirmations() {
	system := d.db.System()
	for res := range d.resolutions.All() {
		dec, ok := res.Decision.(domain.Confirmable)
		if !ok || !dec.IsTaken() {
			continue
		}

		var needed []domain.RequiredConfirmation
		switch dec := dec.(type) {
		case *domain.ChangesToMakeDecision:
			if !dec.Best {
				needed = append(needed, domain.ConfirmNotBest)
			}
			if dec.ChangeType == domain.ChangeTypeDowngrade {
				needed = append(needed, domain.ConfirmDowngrade)
			}
			if dec.OriginID.Masked {
				needed = append(needed, domain.ConfirmMasked)
			}
			if dec.ChangedChoices != nil && !dec.ChangedChoices.Empty() {
				needed = append(needed, domain.ConfirmChangedChoices)
			}
		case *domain.BreakDecision:
			needed = append(needed, domain.ConfirmBreak)
		case *domain.RemoveDecision:
			if slices.ContainsFunc(dec.IDs, func(id *domain.PackageID) bool {
				return matchesAnySpec(system, id)
			}) {
				needed = append(needed, domain.ConfirmRemoveSystemPackage)
			}
		}

		for _, c := range needed {
			if !d.policy.Confirm(res, c) {
				dec.AddRequiredConfirmation(c)
			}
		}
	}
}
