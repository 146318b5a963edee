package session

// Area is the panel holding keyboard focus. Exactly one is active.
type Area int

// Focus areas, in Tab order.
const (
	AreaUnfocused Area = iota
	AreaResults
	AreaVariables
	AreaQuery
)

// Areas returns every area in Tab order.
func Areas() []Area {
	return []Area{AreaUnfocused, AreaResults, AreaVariables, AreaQuery}
}

// String returns the area name.
func (a Area) String() string {
	//exhaustive:enforce
	switch a {
	case AreaUnfocused:
		return "unfocused"
	case AreaResults:
		return "results"
	case AreaVariables:
		return "variables"
	case AreaQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Status returns the status bar text shown while a is active.
func (a Area) Status() string {
	//exhaustive:enforce
	switch a {
	case AreaUnfocused:
		return "- (q to quit)"
	case AreaResults:
		return "Result"
	case AreaVariables:
		return "Variables"
	case AreaQuery:
		return "Query (ENTER to run)"
	default:
		return ""
	}
}
