package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateHierarchySchema checks a seed document before conversion and
// returns every problem found.
func ValidateHierarchySchema(schema *HierarchySchema) []error {
	var errs []error

	if err := validate.Struct(schema); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fieldError(fe))
			}
		} else {
			errs = append(errs, err)
		}
	}

	ids := make(map[string]bool)
	for i, m := range schema.Managers {
		path := fmt.Sprintf("managers[%d]", i)
		if m.Role != string(domain.RoleNSM) {
			errs = append(errs, fmt.Errorf("%s: top-level managers must be NSM, got %q", path, m.Role))
		}
		errs = append(errs, validateBranch(path, m, ids)...)
	}

	return errs
}

// validateBranch checks the structural rules the struct tags cannot express:
// unique IDs and each child sitting exactly one role below its parent.
func validateBranch(path string, m ManagerImport, ids map[string]bool) []error {
	var errs []error

	if m.ID != "" {
		if ids[m.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", path, m.ID))
		}
		ids[m.ID] = true
	}

	childRole, hasChildRole := domain.Role(m.Role).Child()
	for i, c := range m.Children {
		cpath := fmt.Sprintf("%s.children[%d]", path, i)
		switch {
		case !hasChildRole:
			errs = append(errs, fmt.Errorf("%s: %s managers cannot have reports", cpath, m.Role))
		case c.Role != string(childRole):
			errs = append(errs, fmt.Errorf("%s: role %q must be %s under a %s", cpath, c.Role, childRole, m.Role))
		}
		errs = append(errs, validateBranch(cpath, c, ids)...)
	}

	return errs
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "HierarchySchema.")
	if fe.Param() != "" {
		return fmt.Errorf("%s: failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%s: failed %s", field, fe.Tag())
}
