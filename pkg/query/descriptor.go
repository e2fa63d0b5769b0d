package query

// Descriptor is the single, storage-agnostic query the repository layer
// executes verbatim: a filter predicate, a resolved sort and a bounded
// page. None of the three touch storage; that separation is what lets the
// whole engine be unit-tested without a database.
type Descriptor struct {
	Predicate Predicate
	Sort      Sort
	Page      Page
}

// Compose combines predicate, sort and page into one descriptor.
// A nil predicate matches everything; zero-value Sort and Page leave
// ordering and bounds unset.
func Compose(p Predicate, s Sort, pg Page) Descriptor {
	return Descriptor{Predicate: p, Sort: s, Page: pg}
}
