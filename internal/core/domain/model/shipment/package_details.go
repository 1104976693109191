package shipment

import (
	"errors"
	"fmt"
	"strings"

	"lastmile/internal/pkg/errs"
)

// MaxWeight is the heaviest package, in kilograms, the service accepts.
const MaxWeight = 25.0

// PackageDetails describes what is being shipped.
type PackageDetails struct {
	content    string
	weight     float64
	dimensions string
	fragile    bool
}

// PackageDetailsPatch carries the fields of a partial update; nil fields keep
// their current value.
type PackageDetailsPatch struct {
	Content    *string
	Weight     *float64
	Dimensions *string
	Fragile    *bool
}

// NewPackageDetails validates and builds PackageDetails.
// content must not be blank and weight must lie in (0, MaxWeight].
// An empty dimensions string means the dimensions are unknown.
func NewPackageDetails(content string, weight float64, dimensions string, fragile bool) (PackageDetails, error) {
	var (
		contentErr error
		weightErr  error
	)

	if strings.TrimSpace(content) == "" {
		contentErr = errs.NewValueIsRequiredError("content")
	}
	if weight <= 0 {
		weightErr = errs.NewValueIsOutOfRangeErrorWithCause(
			"weight", weight, 0, MaxWeight,
			fmt.Errorf("%v is not greater than 0", weight),
		)
	} else if weight > MaxWeight {
		weightErr = errs.NewValueIsOutOfRangeError("weight", weight, 0, MaxWeight)
	}

	if err := errors.Join(contentErr, weightErr); err != nil {
		return PackageDetails{}, err
	}

	return PackageDetails{
		content:    content,
		weight:     weight,
		dimensions: dimensions,
		fragile:    fragile,
	}, nil
}

func (p PackageDetails) Content() string    { return p.content }
func (p PackageDetails) Weight() float64    { return p.weight }
func (p PackageDetails) Dimensions() string { return p.dimensions }
func (p PackageDetails) Fragile() bool      { return p.fragile }

// Merge returns a copy of p with the fields present in patch replaced.
// The result is validated as a whole, so an invalid patch leaves p untouched.
func (p PackageDetails) Merge(patch PackageDetailsPatch) (PackageDetails, error) {
	content, weight, dimensions, fragile := p.content, p.weight, p.dimensions, p.fragile
	if patch.Content != nil {
		content = *patch.Content
	}
	if patch.Weight != nil {
		weight = *patch.Weight
	}
	if patch.Dimensions != nil {
		dimensions = *patch.Dimensions
	}
	if patch.Fragile != nil {
		fragile = *patch.Fragile
	}
	return NewPackageDetails(content, weight, dimensions, fragile)
}

// IsEmpty reports whether the patch sets no field.
func (patch PackageDetailsPatch) IsEmpty() bool {
	return patch.Content == nil && patch.Weight == nil && patch.Dimensions == nil && patch.Fragile == nil
}
