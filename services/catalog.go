package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Estimation input errors. A bad rate catalog or a negative quantity blocks
// the whole computation; a silently wrong dollar figure would end up in
// insurance documents.
var (
	ErrInvalidRate     = errors.New("invalid rate")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// LabourRateTiers holds the four hourly rates charged for one labour role.
type LabourRateTiers struct {
	Normal     decimal.Decimal `json:"normal"`
	AfterHours decimal.Decimal `json:"after_hours"`
	Saturday   decimal.Decimal `json:"saturday"`
	Sunday     decimal.Decimal `json:"sunday"`
}

// RateCatalog is an immutable snapshot of the per-unit rates for one
// tenant/claim. Labour rates are per hour, equipment rates per rental day
// (extraction units per hour, thermal camera flat per claim), chemical rates
// per square metre, fees flat. TaxRate is a fraction (0.10 = 10% GST).
//
// The engine only reads the catalog; it is loaded from a pricing profile
// record by the caller.
type RateCatalog struct {
	MasterTechnician    LabourRateTiers `json:"master_technician"`
	QualifiedTechnician LabourRateTiers `json:"qualified_technician"`
	Labourer            LabourRateTiers `json:"labourer"`

	DehumidifierLGR       decimal.Decimal `json:"dehumidifier_lgr"`
	DehumidifierMedium    decimal.Decimal `json:"dehumidifier_medium"`
	DehumidifierDesiccant decimal.Decimal `json:"dehumidifier_desiccant"`

	AirMoverAxial       decimal.Decimal `json:"air_mover_axial"`
	AirMoverCentrifugal decimal.Decimal `json:"air_mover_centrifugal"`
	AirMoverLayflat     decimal.Decimal `json:"air_mover_layflat"`

	AFD500  decimal.Decimal `json:"afd_500"`
	AFD2000 decimal.Decimal `json:"afd_2000"`

	ExtractionTruckMount decimal.Decimal `json:"extraction_truck_mount"`
	ExtractionPortable   decimal.Decimal `json:"extraction_portable"`

	ThermalCameraFee decimal.Decimal `json:"thermal_camera_fee"`

	AntiMicrobial    decimal.Decimal `json:"anti_microbial"`
	MouldRemediation decimal.Decimal `json:"mould_remediation"`
	BioHazard        decimal.Decimal `json:"bio_hazard"`

	CalloutFee decimal.Decimal `json:"callout_fee"`
	AdminFee   decimal.Decimal `json:"admin_fee"`

	TaxRate decimal.Decimal `json:"tax_rate"`
}

// Validate rejects any negative rate before a calculator runs, naming the
// offending field.
func (rc RateCatalog) Validate() error {
	checks := []struct {
		name string
		rate decimal.Decimal
	}{
		{"master_technician.normal", rc.MasterTechnician.Normal},
		{"master_technician.after_hours", rc.MasterTechnician.AfterHours},
		{"master_technician.saturday", rc.MasterTechnician.Saturday},
		{"master_technician.sunday", rc.MasterTechnician.Sunday},
		{"qualified_technician.normal", rc.QualifiedTechnician.Normal},
		{"qualified_technician.after_hours", rc.QualifiedTechnician.AfterHours},
		{"qualified_technician.saturday", rc.QualifiedTechnician.Saturday},
		{"qualified_technician.sunday", rc.QualifiedTechnician.Sunday},
		{"labourer.normal", rc.Labourer.Normal},
		{"labourer.after_hours", rc.Labourer.AfterHours},
		{"labourer.saturday", rc.Labourer.Saturday},
		{"labourer.sunday", rc.Labourer.Sunday},
		{"dehumidifier_lgr", rc.DehumidifierLGR},
		{"dehumidifier_medium", rc.DehumidifierMedium},
		{"dehumidifier_desiccant", rc.DehumidifierDesiccant},
		{"air_mover_axial", rc.AirMoverAxial},
		{"air_mover_centrifugal", rc.AirMoverCentrifugal},
		{"air_mover_layflat", rc.AirMoverLayflat},
		{"afd_500", rc.AFD500},
		{"afd_2000", rc.AFD2000},
		{"extraction_truck_mount", rc.ExtractionTruckMount},
		{"extraction_portable", rc.ExtractionPortable},
		{"thermal_camera_fee", rc.ThermalCameraFee},
		{"anti_microbial", rc.AntiMicrobial},
		{"mould_remediation", rc.MouldRemediation},
		{"bio_hazard", rc.BioHazard},
		{"callout_fee", rc.CalloutFee},
		{"admin_fee", rc.AdminFee},
		{"tax_rate", rc.TaxRate},
	}

	for _, c := range checks {
		if c.rate.IsNegative() {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidRate, c.name, c.rate)
		}
	}

	if rc.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax_rate %s exceeds 1.0 (expected a fraction, e.g. 0.10 for 10%% GST)", ErrInvalidRate, rc.TaxRate)
	}

	return nil
}
