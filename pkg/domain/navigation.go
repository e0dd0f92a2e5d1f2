package domain

// BreadcrumbRoot is the sentinel first element of every breadcrumb path.
const BreadcrumbRoot = "Home"

// Breadcrumbs is the ordered folder-name path shown above the file
// grid. It always starts at the root and is never empty. It is display
// state only; it does not scope which files the store returns.
type Breadcrumbs []string

func NewBreadcrumbs() Breadcrumbs {
	return Breadcrumbs{BreadcrumbRoot}
}

// Enter returns the path with folderName appended.
func (b Breadcrumbs) Enter(folderName string) Breadcrumbs {
	next := make(Breadcrumbs, len(b), len(b)+1)
	copy(next, b)
	return append(next, folderName)
}

// NavigateTo truncates the path to the clicked crumb, inclusive.
// Index 0 is always the root; out-of-range indexes clamp rather than
// corrupt the path.
func (b Breadcrumbs) NavigateTo(index int) Breadcrumbs {
	if len(b) == 0 {
		return NewBreadcrumbs()
	}
	if index < 0 {
		index = 0
	}
	if index >= len(b) {
		index = len(b) - 1
	}

	next := make(Breadcrumbs, index+1)
	copy(next, b[:index+1])
	return next
}

// Current returns the deepest folder name on the path.
func (b Breadcrumbs) Current() string {
	if len(b) == 0 {
		return BreadcrumbRoot
	}
	return b[len(b)-1]
}
