package inductor

import (
	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
)

// ValidateBands checks every band against its role and reports all problems
// at once, unlike Decode which stops at the first.
func ValidateBands(bands []string) error {
	if len(bands) != 3 && len(bands) != 4 {
		return merry.Errorf("expected 3 or 4 bands, got %d", len(bands))
	}
	var errs error
	for i, b := range bands {
		c := Canonical(b)
		switch {
		case i < 2 && !ValidForRole(c, RoleDigit):
			errs = multierror.Append(errs, merry.Errorf("band %d: %q is not a digit color", i+1, b))
		case i == 2 && !ValidForRole(c, RoleMultiplier):
			errs = multierror.Append(errs, merry.Errorf("band 3: %q is not a multiplier color", b))
		case i == 3 && !ValidForRole(c, RoleTolerance):
			errs = multierror.Append(errs, merry.Errorf("band 4: %q is not a tolerance color", b))
		}
	}
	return errs
}
