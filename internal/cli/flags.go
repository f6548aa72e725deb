package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/spf13/pflag"
)

// monthlyMode selects how a node's months are filled before printing or
// exporting.
type monthlyMode string

const (
	modeNone     monthlyMode = "none"
	modeAuto     monthlyMode = "auto"
	modeLastYear monthlyMode = "last-year"
	modeReset    monthlyMode = "reset"
)

var _ pflag.Value = (*monthlyMode)(nil)

func (m *monthlyMode) String() string { return string(*m) }
func (m *monthlyMode) Type() string { return "mode" }

func (m *monthlyMode) Set(s string) error {
	switch v := monthlyMode(strings.ToLower(s)); v {
	case modeNone, modeAuto, modeLastYear, modeReset:
		*m = v
		return nil
	case "ly", "lastyear":
		*m = modeLastYear
		return nil
	default:
		return fmt.Errorf("unknown mode %q (want none, auto, last-year or reset)", s)
	}
}

// monthFlag parses a month given as 1-12 or by name ("mar", "March").
type monthFlag struct {
	index int
	set   bool
}

var _ pflag.Value = (*monthFlag)(nil)

func (m *monthFlag) Type() string { return "month" }

func (m *monthFlag) String() string {
	if !m.set {
		return ""
	}
	return domain.MonthNames[m.index]
}

func (m *monthFlag) Set(s string) error {
	idx, err := parseMonth(s)
	if err != nil {
		return err
	}
	m.index, m.set = idx, true
	return nil
}

func parseMonth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > domain.MonthsPerYear {
			return 0, fmt.Errorf("month %d out of range 1-12", n)
		}
		return n - 1, nil
	}
	if len(s) >= 3 {
		lower := strings.ToLower(s)
		for i, name := range domain.MonthNames {
			if strings.HasPrefix(strings.ToLower(name), lower) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown month %q", s)
}
