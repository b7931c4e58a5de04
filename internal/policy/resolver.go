package policy

import (
	"clone-generator/internal/model"
)

// Resolve computes the ordered property plan of t.
// reg may be nil, in which case no type is cloneable.
func Resolve(t *model.Type, reg Registry, opts Options) Resolution {
	res := Resolution{
		Type: t.ID,
		Mode: t.Mode,
	}

	var shallow, deep []PropertyPlan

	for i := range t.Properties {
		p := &t.Properties[i]

		plan := PropertyPlan{
			Name:       p.Name,
			Shape:      p.Declared.Shape,
			TypeString: p.TypeString,
		}

		if included, reason := selected(t.Mode, p); !included {
			plan.Treatment = TreatmentExcluded
			plan.Reason = reason
			res.Excluded = append(res.Excluded, plan)

			continue
		}

		plan.Treatment, plan.Reason = treatment(p, reg, opts)

		if plan.Treatment == TreatmentDeepClone {
			deep = append(deep, plan)
		} else {
			shallow = append(shallow, plan)
		}
	}

	res.Properties = append(shallow, deep...)

	return res
}

// selected applies the selection rule of mode to p.
func selected(mode model.SelectionMode, p *model.Property) (bool, string) {
	if !p.Settable {
		return false, ReasonNotSettable
	}

	if mode == model.SelectionExplicit {
		if p.Include {
			return true, ""
		}

		return false, ReasonNotIncluded
	}

	if p.Exclude {
		return false, ReasonExcludedMarker
	}

	return true, ""
}

// treatment applies the treatment rules to an included property.
func treatment(p *model.Property, reg Registry, opts Options) (Treatment, string) {
	if p.IsSelfType && !opts.AllowSelfDeepClone {
		return TreatmentShallowCopy, ReasonSelfType
	}

	if p.Declared.Shape == model.ShapeOther || !p.Declared.IsNamed() {
		return TreatmentShallowCopy, ReasonPlainValue
	}

	if reg == nil || !reg.IsCloneable(p.Declared.ID) {
		return TreatmentShallowCopy, ReasonNotCloneable
	}

	if p.PreventDeepCopy {
		return TreatmentShallowCopy, ReasonPreventDeepCopy
	}

	return TreatmentDeepClone, ReasonCloneable
}
