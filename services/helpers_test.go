package services

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// d parses a decimal literal, failing the build of the test on bad input.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testCatalog returns the rate catalog used across the engine tests.
func testCatalog() RateCatalog {
	return RateCatalog{
		MasterTechnician:    LabourRateTiers{Normal: d("100"), AfterHours: d("130"), Saturday: d("145"), Sunday: d("170")},
		QualifiedTechnician: LabourRateTiers{Normal: d("85"), AfterHours: d("110"), Saturday: d("125"), Sunday: d("145")},
		Labourer:            LabourRateTiers{Normal: d("60"), AfterHours: d("80"), Saturday: d("90"), Sunday: d("105")},

		DehumidifierLGR:       d("50"),
		DehumidifierMedium:    d("40"),
		DehumidifierDesiccant: d("120"),

		AirMoverAxial:       d("20"),
		AirMoverCentrifugal: d("28"),
		AirMoverLayflat:     d("34"),

		AFD500:  d("55"),
		AFD2000: d("100"),

		ExtractionTruckMount: d("140"),
		ExtractionPortable:   d("90"),

		ThermalCameraFee: d("200"),

		AntiMicrobial:    d("8"),
		MouldRemediation: d("14"),
		BioHazard:        d("20"),

		CalloutFee: d("150"),
		AdminFee:   d("95"),

		TaxRate: d("0.10"),
	}
}

// assertDecimal fails the test when got != want, printing both.
func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
