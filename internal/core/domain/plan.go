package domain

import "strings"

// PlanRecordVersion is the current PlanRecord format version.
// It allows stored records from older formats to be detected.
const PlanRecordVersion = 1

// Plan is the ordered sequence of Resolutions produced by one resolution attempt.
type Plan struct {
	Resolutions []*Resolution
}

// Find returns the Resolution for r, or nil.
func (p *Plan) Find(r Resolvent) *Resolution {
	for _, res := range p.Resolutions {
		if res.Resolvent == r {
			return res
		}
	}
	return nil
}

// Steps returns the taken decisions that change something, in plan order.
func (p *Plan) Steps() []*Resolution {
	var steps []*Resolution
	for _, res := range p.Resolutions {
		if res.Decision == nil || !res.Decision.IsTaken() {
			continue
		}
		switch res.Decision.(type) {
		case *ChangesToMakeDecision, *RemoveDecision, *BreakDecision:
			steps = append(steps, res)
		}
	}
	return steps
}

// Failures returns the taken UnableToMake decisions.
func (p *Plan) Failures() []*Resolution {
	var failures []*Resolution
	for _, res := range p.Resolutions {
		if dec, ok := res.Decision.(*UnableToMakeDecision); ok && dec.Taken {
			failures = append(failures, res)
		}
	}
	return failures
}

// PlanRecord is the serialisable form of a Plan.
type PlanRecord struct {
	Key     string     `json:"key,omitzero"`
	Version int        `json:"version"`
	Targets []string   `json:"targets,omitzero"`
	Steps   []PlanStep `json:"steps"`
}

// PlanStep is one decided Resolution in a PlanRecord.
type PlanStep struct {
	Resolvent      string   `json:"resolvent"`
	Decision       string   `json:"decision"`
	Taken          bool     `json:"taken"`
	Package        string   `json:"package,omitzero"`
	ChangeType     string   `json:"change_type,omitzero"`
	Replacing      []string `json:"replacing,omitzero"`
	ChangedChoices string   `json:"changed_choices,omitzero"`
	Confirmations  []string `json:"confirmations,omitzero"`
	Unsuitable     []string `json:"unsuitable,omitzero"`
	Reasons        []string `json:"reasons,omitzero"`
}

// Record converts the plan into a PlanRecord.
func (p *Plan) Record(key string, targets []string) PlanRecord {
	rec := PlanRecord{
		Key:     key,
		Version: PlanRecordVersion,
		Targets: targets,
		Steps:   make([]PlanStep, 0, len(p.Resolutions)),
	}
	for _, res := range p.Resolutions {
		if res.Decision == nil {
			continue
		}
		rec.Steps = append(rec.Steps, stepFor(res))
	}
	return rec
}

func stepFor(res *Resolution) PlanStep {
	step := PlanStep{
		Resolvent: res.Resolvent.String(),
		Decision:  res.Decision.Kind(),
		Taken:     res.Decision.IsTaken(),
	}
	for _, c := range res.Constraints {
		step.Reasons = append(step.Reasons, c.Reason.String())
	}

	switch dec := res.Decision.(type) {
	case *ChangesToMakeDecision:
		step.Package = dec.OriginID.String()
		step.ChangeType = dec.ChangeType.String()
		if dec.Destination != nil {
			step.Replacing = idStrings(dec.Destination.Replacing)
		}
		if !dec.ChangedChoices.Empty() {
			step.ChangedChoices = dec.ChangedChoices.String()
		}
	case *ExistingNoChangeDecision:
		step.Package = dec.ExistingID.String()
	case *RemoveDecision:
		step.Replacing = idStrings(dec.IDs)
	case *BreakDecision:
		step.Package = dec.ExistingID.String()
	case *UnableToMakeDecision:
		for _, u := range dec.Unsuitable {
			line := u.ID.String()
			if u.Masked {
				line += " (masked: " + strings.Join(u.ID.MaskReasons, ", ") + ")"
			}
			for _, c := range u.Unmet {
				line += "; unmet " + c.Spec.String()
			}
			step.Unsuitable = append(step.Unsuitable, line)
		}
	}

	if c, ok := res.Decision.(Confirmable); ok {
		for _, rc := range c.RequiredConfirmations() {
			step.Confirmations = append(step.Confirmations, string(rc))
		}
	}
	return step
}

func idStrings(ids []*PackageID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
