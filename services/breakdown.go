package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WaterClass is the IICRC drying-difficulty classification (1–4) selected on
// the inspection report.
type WaterClass int

// IsValid reports whether the class is one of the four IICRC water classes.
func (w WaterClass) IsValid() bool {
	return w >= 1 && w <= 4
}

// HazardLevel describes the contamination hazard encountered on site.
type HazardLevel string

const (
	HazardStandard HazardLevel = "standard"
	HazardModerate HazardLevel = "moderate"
	HazardHigh     HazardLevel = "high"
	HazardExtreme  HazardLevel = "extreme"
)

// IsValid checks if the level is one of the defined constants.
func (h HazardLevel) IsValid() bool {
	switch h {
	case HazardStandard, HazardModerate, HazardHigh, HazardExtreme:
		return true
	}
	return false
}

// TierHours holds hour counts for one labour role across the four pay tiers.
type TierHours struct {
	Normal     decimal.Decimal `json:"normal"`
	AfterHours decimal.Decimal `json:"after_hours"`
	Saturday   decimal.Decimal `json:"saturday"`
	Sunday     decimal.Decimal `json:"sunday"`
}

// Sum returns the total hours across all four tiers.
func (t TierHours) Sum() decimal.Decimal {
	return t.Normal.Add(t.AfterHours).Add(t.Saturday).Add(t.Sunday)
}

// LabourBreakdown captures hours worked per role and pay tier.
type LabourBreakdown struct {
	MasterTechnician    TierHours `json:"master_technician"`
	QualifiedTechnician TierHours `json:"qualified_technician"`
	Labourer            TierHours `json:"labourer"`
}

// EquipmentBreakdown captures rental durations per equipment subtype.
// Dehumidifiers, air movers and air filtration devices are metered in rental
// days, extraction units in hours; the thermal camera is a flat per-claim
// charge gated by a boolean.
type EquipmentBreakdown struct {
	DehumidifierLGRDays       decimal.Decimal `json:"dehumidifier_lgr_days"`
	DehumidifierMediumDays    decimal.Decimal `json:"dehumidifier_medium_days"`
	DehumidifierDesiccantDays decimal.Decimal `json:"dehumidifier_desiccant_days"`

	AirMoverAxialDays       decimal.Decimal `json:"air_mover_axial_days"`
	AirMoverCentrifugalDays decimal.Decimal `json:"air_mover_centrifugal_days"`
	AirMoverLayflatDays     decimal.Decimal `json:"air_mover_layflat_days"`

	AFD500Days  decimal.Decimal `json:"afd_500_days"`
	AFD2000Days decimal.Decimal `json:"afd_2000_days"`

	ExtractionTruckMountHours decimal.Decimal `json:"extraction_truck_mount_hours"`
	ExtractionPortableHours   decimal.Decimal `json:"extraction_portable_hours"`

	ThermalCamera bool `json:"thermal_camera"`
}

// ChemicalBreakdown captures the treated area in square metres per
// treatment type.
type ChemicalBreakdown struct {
	AntiMicrobialSqm    decimal.Decimal `json:"anti_microbial_sqm"`
	MouldRemediationSqm decimal.Decimal `json:"mould_remediation_sqm"`
	BioHazardSqm        decimal.Decimal `json:"bio_hazard_sqm"`
}

// FeeBreakdown gates the flat fees applied to a claim.
type FeeBreakdown struct {
	IncludeCallout        bool `json:"include_callout"`
	IncludeAdministration bool `json:"include_administration"`
}

// ModifierBreakdown holds the situational modifier selections. Every field is
// optional; a nil field means "no adjustment", which is distinct from a
// selection that happens to map to 0%.
type ModifierBreakdown struct {
	WaterClass           *WaterClass      `json:"water_class,omitempty"`
	HazardLevel          *HazardLevel     `json:"hazard_level,omitempty"`
	TimelineExtensionPct *decimal.Decimal `json:"timeline_extension_pct,omitempty"`
	ComplexityMultiplier *decimal.Decimal `json:"complexity_multiplier,omitempty"`
}

// EstimationInput is the full work-breakdown snapshot handed to the engine,
// as captured by the report editor.
type EstimationInput struct {
	Labour    LabourBreakdown    `json:"labour"`
	Equipment EquipmentBreakdown `json:"equipment"`
	Chemicals ChemicalBreakdown  `json:"chemicals"`
	Fees      FeeBreakdown       `json:"fees"`
	Modifiers *ModifierBreakdown `json:"modifiers,omitempty"`
}

// Validate rejects negative quantities and out-of-range modifier selections.
func (in EstimationInput) Validate() error {
	quantities := []struct {
		name string
		qty  decimal.Decimal
	}{
		{"labour.master_technician.normal", in.Labour.MasterTechnician.Normal},
		{"labour.master_technician.after_hours", in.Labour.MasterTechnician.AfterHours},
		{"labour.master_technician.saturday", in.Labour.MasterTechnician.Saturday},
		{"labour.master_technician.sunday", in.Labour.MasterTechnician.Sunday},
		{"labour.qualified_technician.normal", in.Labour.QualifiedTechnician.Normal},
		{"labour.qualified_technician.after_hours", in.Labour.QualifiedTechnician.AfterHours},
		{"labour.qualified_technician.saturday", in.Labour.QualifiedTechnician.Saturday},
		{"labour.qualified_technician.sunday", in.Labour.QualifiedTechnician.Sunday},
		{"labour.labourer.normal", in.Labour.Labourer.Normal},
		{"labour.labourer.after_hours", in.Labour.Labourer.AfterHours},
		{"labour.labourer.saturday", in.Labour.Labourer.Saturday},
		{"labour.labourer.sunday", in.Labour.Labourer.Sunday},
		{"equipment.dehumidifier_lgr_days", in.Equipment.DehumidifierLGRDays},
		{"equipment.dehumidifier_medium_days", in.Equipment.DehumidifierMediumDays},
		{"equipment.dehumidifier_desiccant_days", in.Equipment.DehumidifierDesiccantDays},
		{"equipment.air_mover_axial_days", in.Equipment.AirMoverAxialDays},
		{"equipment.air_mover_centrifugal_days", in.Equipment.AirMoverCentrifugalDays},
		{"equipment.air_mover_layflat_days", in.Equipment.AirMoverLayflatDays},
		{"equipment.afd_500_days", in.Equipment.AFD500Days},
		{"equipment.afd_2000_days", in.Equipment.AFD2000Days},
		{"equipment.extraction_truck_mount_hours", in.Equipment.ExtractionTruckMountHours},
		{"equipment.extraction_portable_hours", in.Equipment.ExtractionPortableHours},
		{"chemicals.anti_microbial_sqm", in.Chemicals.AntiMicrobialSqm},
		{"chemicals.mould_remediation_sqm", in.Chemicals.MouldRemediationSqm},
		{"chemicals.bio_hazard_sqm", in.Chemicals.BioHazardSqm},
	}

	for _, q := range quantities {
		if q.qty.IsNegative() {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidQuantity, q.name, q.qty)
		}
	}

	if m := in.Modifiers; m != nil {
		if m.WaterClass != nil && !m.WaterClass.IsValid() {
			return fmt.Errorf("%w: water_class %d is not in 1-4", ErrInvalidQuantity, *m.WaterClass)
		}
		if m.HazardLevel != nil && !m.HazardLevel.IsValid() {
			return fmt.Errorf("%w: hazard_level %q is unknown", ErrInvalidQuantity, *m.HazardLevel)
		}
		if m.TimelineExtensionPct != nil && m.TimelineExtensionPct.IsNegative() {
			return fmt.Errorf("%w: timeline_extension_pct is negative (%s)", ErrInvalidQuantity, *m.TimelineExtensionPct)
		}
		if m.ComplexityMultiplier != nil && m.ComplexityMultiplier.LessThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: complexity_multiplier %s is below 1.0", ErrInvalidQuantity, *m.ComplexityMultiplier)
		}
	}

	return nil
}
