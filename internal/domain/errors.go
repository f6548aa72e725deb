package domain

import "errors"

var (
	ErrNodeNotFound         = errors.New("node not found")
	ErrNodeNotInView        = errors.New("node is not in the current level")
	ErrBreadcrumbOutOfRange = errors.New("breadcrumb index out of range")
	ErrMonthOutOfRange      = errors.New("month index out of range")
	ErrMonthsNotLoaded      = errors.New("monthly targets not loaded")
	ErrPanelClosed          = errors.New("monthly panel is not open")
	ErrSplitInfeasible      = errors.New("too many siblings for a bounded split")
)
