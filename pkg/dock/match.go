package dock

// Descriptor holds the attributes used to recognize a device model.
// An empty field means the attribute was not reported.
type Descriptor struct {
	VendorID  string
	ProductID string
}

// Matcher recognizes the dock by an exact, case-sensitive vendor and product ID comparison.
type Matcher struct {
	VendorID  string
	ProductID string
}

// IsDock reports whether d describes the dock. Missing attributes never match.
func (m Matcher) IsDock(d Descriptor) bool {
	if d.VendorID == "" || d.ProductID == "" {
		return false
	}

	return d.VendorID == m.VendorID && d.ProductID == m.ProductID
}
