package college

// Record is one group of cutoff rows sharing college, code, branch, district
// and category. LowestCutoff and HighestCutoff are the MIN and MAX of the
// cutoffs that fell inside the requested range; Count is how many did.
type Record struct {
	CollegeName   string
	CollegeCode   string
	Branch        string
	District      string
	Category      string
	LowestCutoff  float64
	HighestCutoff float64
	Count         int64
}

// Filters lists the values the client offers as filter choices.
type Filters struct {
	Districts    []string
	CollegeCodes []string
}

// Row is an untyped column-to-value mapping for tables whose shape the
// service does not own. Values are JSON-friendly: byte slices are decoded to
// strings by the repository.
type Row map[string]any
