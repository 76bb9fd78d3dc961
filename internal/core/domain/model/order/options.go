package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// PrintType enumerates the print services a customer can order.
type PrintType string

const (
	PrintTypeBlackAndWhite PrintType = "blackAndWhite"
	PrintTypeColor         PrintType = "color"
	PrintTypeCustom        PrintType = "custom"
	PrintTypeSoftBinding   PrintType = "softBinding"
	PrintTypeSpiralBinding PrintType = "spiralBinding"
	PrintTypeCustomPrint   PrintType = "customPrint"
)

var validPrintTypes = map[PrintType]bool{
	PrintTypeBlackAndWhite: true,
	PrintTypeColor:         true,
	PrintTypeCustom:        true,
	PrintTypeSoftBinding:   true,
	PrintTypeSpiralBinding: true,
	PrintTypeCustomPrint:   true,
}

// ParsePrintType converts a raw string into a PrintType.
func ParsePrintType(s string) (PrintType, error) {
	pt := PrintType(s)
	if err := pt.Validate(); err != nil {
		return "", err
	}
	return pt, nil
}

// Validate checks the value against the closed enumeration.
func (p PrintType) Validate() error {
	if !validPrintTypes[p] {
		return errs.NewValueIsInvalidErrorWithCause("printType",
			fmt.Errorf("%q is not a valid print type", string(p)))
	}
	return nil
}

// HasBindingSurcharge reports whether the print type carries
// the fixed binding surcharge.
func (p PrintType) HasBindingSurcharge() bool {
	return p == PrintTypeSpiralBinding || p == PrintTypeSoftBinding
}

// BindingColorType enumerates the color options for bound orders.
// It is optional on an order; nil means not applicable.
type BindingColorType string

const (
	BindingColorBlackAndWhite BindingColorType = "blackAndWhite"
	BindingColorColor         BindingColorType = "color"
	BindingColorCustom        BindingColorType = "custom"
)

var validBindingColors = map[BindingColorType]bool{
	BindingColorBlackAndWhite: true,
	BindingColorColor:         true,
	BindingColorCustom:        true,
}

// ParseBindingColorType converts a raw string into a BindingColorType.
func ParseBindingColorType(s string) (BindingColorType, error) {
	b := BindingColorType(s)
	if err := b.Validate(); err != nil {
		return "", err
	}
	return b, nil
}

// Validate checks the value against the closed enumeration.
func (b BindingColorType) Validate() error {
	if !validBindingColors[b] {
		return errs.NewValueIsInvalidErrorWithCause("bindingColorType",
			fmt.Errorf("%q is not a valid binding color type", string(b)))
	}
	return nil
}

// PaperSize enumerates the supported paper formats.
type PaperSize string

const (
	PaperSizeA4     PaperSize = "a4"
	PaperSizeA3     PaperSize = "a3"
	PaperSizeLetter PaperSize = "letter"
	PaperSizeLegal  PaperSize = "legal"
)

var validPaperSizes = map[PaperSize]bool{
	PaperSizeA4:     true,
	PaperSizeA3:     true,
	PaperSizeLetter: true,
	PaperSizeLegal:  true,
}

// ParsePaperSize converts a raw string into a PaperSize.
// An empty string yields the a4 default.
func ParsePaperSize(s string) (PaperSize, error) {
	if s == "" {
		return PaperSizeA4, nil
	}

	ps := PaperSize(s)
	if err := ps.Validate(); err != nil {
		return "", err
	}
	return ps, nil
}

// Validate checks the value against the closed enumeration.
func (p PaperSize) Validate() error {
	if !validPaperSizes[p] {
		return errs.NewValueIsInvalidErrorWithCause("paperSize",
			fmt.Errorf("%q is not a valid paper size", string(p)))
	}
	return nil
}

// PrintSide enumerates single- versus double-sided printing.
type PrintSide string

const (
	PrintSideSingle PrintSide = "single"
	PrintSideDouble PrintSide = "double"
)

// ParsePrintSide converts a raw string into a PrintSide.
// An empty string yields the single-sided default.
func ParsePrintSide(s string) (PrintSide, error) {
	if s == "" {
		return PrintSideSingle, nil
	}

	side := PrintSide(s)
	if err := side.Validate(); err != nil {
		return "", err
	}
	return side, nil
}

// Validate checks the value against the closed enumeration.
func (p PrintSide) Validate() error {
	if p != PrintSideSingle && p != PrintSideDouble {
		return errs.NewValueIsInvalidErrorWithCause("printSide",
			fmt.Errorf("%q is not a valid print side", string(p)))
	}
	return nil
}
