package model

// ListingFilter narrows a listing search. A nil field means the dimension
// is not filtered; zero is a valid bound.
type ListingFilter struct {
	TransactionType *string
	Type            *string
	Region          *string
	MinPrice        *float64
	MaxPrice        *float64
	MinArea         *float64
	MaxArea         *float64
}

// IsEmpty reports whether no dimension is set.
func (f ListingFilter) IsEmpty() bool {
	return f == ListingFilter{}
}

// RegionOnly reports whether region is the only dimension set.
func (f ListingFilter) RegionOnly() bool {
	if f.Region == nil {
		return false
	}
	rest := f
	rest.Region = nil
	return rest.IsEmpty()
}
